package command

import (
	"strings"

	"lovedj/internal/agent"
	"lovedj/internal/core"
	"lovedj/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// SimulateOptions simulate 指令參數
type SimulateOptions struct {
	Rounds  int
	Model   string
	Theme   string
	NameA   string
	NameB   string
	Mock    bool
	Verbose bool
}

type SimulateHandler struct {
	logger      *zap.Logger
	dateService *service.DateService
}

func NewSimulateHandler(logger *zap.Logger, dateService *service.DateService) *SimulateHandler {
	return &SimulateHandler{logger: logger, dateService: dateService}
}

// Simulate 在終端機跑一場約會
func (handler *SimulateHandler) Simulate(cmd *cobra.Command, opts SimulateOptions) error {
	req := service.DateRequest{
		ProfileA: agent.Profile{Name: opts.NameA},
		ProfileB: agent.Profile{Name: opts.NameB},
		Rounds:   opts.Rounds,
		Model:    opts.Model,
		Theme:    opts.Theme,
	}
	if opts.Mock {
		req.Provider = string(core.ProviderMock)
	}

	date, err := handler.dateService.Run(cmd.Context(), req, func(e service.DateEvent) {
		switch e.Type {
		case core.DateEventStart:
			cmd.Printf("💘 %s [%s], %d round(s)\n\n", e.Model, e.Provider, e.Rounds)
		case core.DateEventTurn:
			if e.Turn.Round > 0 && e.Side == agent.SideB {
				cmd.Printf("--- round %d ---\n", e.Turn.Round)
			}
			cmd.Printf("%s %s: %s\n", e.Emoji, e.Turn.Speaker, strings.TrimSpace(e.Turn.Text))
		case core.DateEventRating:
			cmd.Printf("%s %s rates the date %d/10\n", e.Emoji, e.Side, e.Rating)
		case core.DateEventDone:
			cmd.Printf("\n⭐ average %.1f/10\n", e.Ratings.Average)
		case core.DateEventError:
			cmd.PrintErrf("❌ %s\n", e.Error)
		}
	})
	if err != nil {
		return err
	}
	if opts.Verbose {
		cmd.Printf("date %s: %d requests, %d tokens\n", date.ID, date.Usage.Requests, date.Usage.TotalTokens)
	}
	return nil
}
