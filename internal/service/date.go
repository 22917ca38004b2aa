package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lovedj/config"
	"lovedj/internal/agent"
	"lovedj/internal/catalog"
	"lovedj/internal/core"
	fluentdModel "lovedj/internal/database/fluentd/model"
	"lovedj/internal/database/mongodb/model"
	mongoRepo "lovedj/internal/database/mongodb/repository"
	cErr "lovedj/internal/pkg/error"
	"lovedj/internal/pkg/request"
	"lovedj/internal/service/chat"
	"lovedj/internal/telemetry"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultRounds = 3
	maxRounds     = 6
	// 記在 usage log 的呼叫端點
	usageEndpoint = "chat.completions"
)

// DateRepository 約會紀錄的儲存
type DateRepository interface {
	Create(ctx context.Context, date *model.Date) error
	Finish(ctx context.Context, date *model.Date) error
	GetByID(ctx context.Context, dateID string) (*model.Date, error)
	List(ctx context.Context, listOptions core.ListOptions) ([]*model.Date, error)
}

// DateLogger 用量與約會摘要的外送紀錄
type DateLogger interface {
	LogUsage(ctx context.Context, usage fluentdModel.AIUsageLog) error
	LogDate(ctx context.Context, date fluentdModel.DateLog) error
}

// DateRequest 一場約會的設定；空欄位使用預設值
type DateRequest struct {
	ProfileA agent.Profile `json:"profileA"`
	ProfileB agent.Profile `json:"profileB"`
	// 0 代表使用預設回合數
	Rounds int `json:"rounds" validate:"gte=0"`
	// 模型 id 或下拉選單 label（"<model> [<provider>]"）
	Model string `json:"model" validate:"max=200"`
	// 指定 provider 時略過目錄查詢
	Provider string `json:"provider" validate:"omitempty,oneof=openai google mock"`
	Theme    string `json:"theme" validate:"max=200"`

	RequestID string `json:"-"`
	ClientIP  string `json:"-"`
}

func (DateRequest) GetMessages() request.ValidatorMessages {
	messages := request.ValidatorMessages{
		"Rounds.gte":     "rounds must not be negative",
		"Model.max":      "model must be at most 200 characters",
		"Provider.oneof": "provider must be one of openai, google, mock",
		"Theme.max":      "theme must be at most 200 characters",
	}
	for field, side := range map[string]string{"ProfileA": "profileA", "ProfileB": "profileB"} {
		messages[field+".Name.max"] = side + ": name must be at most 40 characters"
		messages[field+".Persona.max"] = side + ": persona must be at most 1000 characters"
		messages[field+".Pronoun.oneof"] = side + ": pronoun must be one of he/him, she/her, they/them"
	}
	return messages
}

// DateEvent 約會進行中推送給前端的事件
type DateEvent struct {
	Type     core.DateEventType `json:"type"`
	DateID   string             `json:"dateId"`
	Model    string             `json:"model,omitempty"`
	Provider string             `json:"provider,omitempty"`
	Rounds   int                `json:"rounds,omitempty"`
	Side     agent.Side         `json:"side,omitempty"`
	Emoji    string             `json:"emoji,omitempty"`
	Turn     *agent.Turn        `json:"turn,omitempty"`
	Rating   int                `json:"rating,omitempty"`
	Ratings  *model.Ratings     `json:"ratings,omitempty"`
	Date     *model.Date        `json:"date,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// DateEmitter 接收事件；在 Run 的 goroutine 內同步呼叫
type DateEmitter func(DateEvent)

type datePlan struct {
	rounds   int
	model    string
	provider string
	chat     chat.Service
	a, b     agent.Agent
}

type DateService struct {
	conf     *config.Configuration
	logger   *zap.Logger
	trace    *telemetry.Trace
	metric   *telemetry.Metric
	store    *catalog.Store
	registry *Registry
	repo     DateRepository
	logs     DateLogger
	validate *validator.Validate

	newID func() string
	now   func() time.Time
}

// NewDateService repo / logs 可為 nil（不落地、不外送）
func NewDateService(
	conf *config.Configuration,
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	store *catalog.Store,
	registry *Registry,
	repo DateRepository,
	logs DateLogger,
) *DateService {
	return &DateService{
		conf:     conf,
		logger:   logger.Named("date"),
		trace:    trace,
		metric:   metric,
		store:    store,
		registry: registry,
		repo:     repo,
		logs:     logs,
		validate: validator.New(),
		newID:    newDateID,
		now:      time.Now,
	}
}

func newDateID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// Run 執行一整場約會：A 開場，每回合 B、A 各回應一次，最後雙方評分。
// 回傳的 Date 即使失敗也會帶著已完成的對話。
func (s *DateService) Run(ctx context.Context, req DateRequest, emit DateEmitter) (*model.Date, error) {
	if emit == nil {
		emit = func(DateEvent) {}
	}
	plan, err := s.plan(ctx, req)
	if err != nil {
		return nil, err
	}

	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanDateRun))
	started := s.now()
	date := &model.Date{
		ID:       s.newID(),
		Status:   core.DateStatusRunning,
		Model:    plan.model,
		Provider: plan.provider,
		Theme:    strings.TrimSpace(req.Theme),
		Rounds:   plan.rounds,
		AgentA:   plan.a,
		AgentB:   plan.b,
		ClientIP: req.ClientIP,
	}
	meta := core.TraceDateMeta{
		DateID:   date.ID,
		Model:    date.Model,
		Provider: date.Provider,
		Rounds:   date.Rounds,
		Theme:    date.Theme,
	}
	s.trace.ApplyTraceAttributes(span, meta)
	s.persist(ctx, "create", date, s.repoCreate)

	s.logger.Info("date started",
		zap.String("date_id", date.ID),
		zap.String("model", date.Model),
		zap.String("provider", date.Provider),
		zap.Int("rounds", date.Rounds),
	)
	emit(DateEvent{Type: core.DateEventStart, DateID: date.ID, Model: date.Model, Provider: date.Provider, Rounds: date.Rounds})

	var transcript agent.Transcript
	runErr := s.converse(ctx, req, plan, date, &transcript, emit)
	if runErr == nil {
		runErr = s.rate(ctx, req, plan, date, &transcript, emit)
	}
	date.Turns = transcript.Turns()

	date.Status = core.DateStatusFinished
	if runErr != nil {
		date.Status = core.DateStatusFailed
		date.Error = errorMessage(runErr)
	}
	// 呼叫端中斷時仍要寫入結果
	s.persist(context.WithoutCancel(ctx), "finish", date, s.repoFinish)
	s.metric.ObserveDate(date.Status)
	s.logDate(context.WithoutCancel(ctx), req, date, time.Since(started))

	meta.Turns = len(date.Turns)
	meta.Status = string(date.Status)
	s.trace.ApplyTraceAttributes(span, meta)
	end(runErr)

	if runErr != nil {
		s.logger.Warn("date failed", zap.String("date_id", date.ID), zap.Int("turns", len(date.Turns)), zap.Error(runErr))
		emit(DateEvent{Type: core.DateEventError, DateID: date.ID, Error: errorMessage(runErr)})
		return date, cErr.From(runErr)
	}
	s.logger.Info("date finished",
		zap.String("date_id", date.ID),
		zap.Int("turns", len(date.Turns)),
		zap.Float64("average", date.Ratings.Average),
	)
	emit(DateEvent{Type: core.DateEventDone, DateID: date.ID, Ratings: date.Ratings, Date: date})
	return date, nil
}

func (s *DateService) converse(ctx context.Context, req DateRequest, plan datePlan, date *model.Date, transcript *agent.Transcript, emit DateEmitter) error {
	say := func(round int, self agent.Agent, prompt agent.Prompt) error {
		res, err := s.complete(ctx, req, plan, date, self, prompt, transcript.Len())
		if err != nil {
			return err
		}
		turn := transcript.Add(round, self, res.Text)
		emit(DateEvent{Type: core.DateEventTurn, DateID: date.ID, Side: self.Side, Emoji: self.Emoji(), Turn: &turn})
		return nil
	}

	if err := say(0, plan.a, agent.OpeningPrompt(plan.a)); err != nil {
		return err
	}
	for round := 1; round <= plan.rounds; round++ {
		if err := say(round, plan.b, agent.ResponsePrompt(plan.b, plan.a, transcript.History())); err != nil {
			return err
		}
		if err := say(round, plan.a, agent.ResponsePrompt(plan.a, plan.b, transcript.History())); err != nil {
			return err
		}
	}
	return nil
}

func (s *DateService) rate(ctx context.Context, req DateRequest, plan datePlan, date *model.Date, transcript *agent.Transcript, emit DateEmitter) error {
	history := transcript.History()
	scores := make(map[agent.Side]int, 2)
	for _, self := range []agent.Agent{plan.a, plan.b} {
		res, err := s.complete(ctx, req, plan, date, self, agent.RatingPrompt(self, history), transcript.Len())
		if err != nil {
			return err
		}
		score, err := agent.ParseRating(res.Text)
		if err != nil {
			s.logger.Warn("rating reply is not a number, using neutral score",
				zap.String("date_id", date.ID),
				zap.String("speaker", self.Name),
				zap.Int("score", score),
				zap.Error(err),
			)
		}
		scores[self.Side] = score
		emit(DateEvent{Type: core.DateEventRating, DateID: date.ID, Side: self.Side, Emoji: self.Emoji(), Rating: score})
	}
	date.Ratings = &model.Ratings{
		A:       scores[agent.SideA],
		B:       scores[agent.SideB],
		Average: agent.AverageRating(scores[agent.SideA], scores[agent.SideB]),
	}
	return nil
}

func (s *DateService) complete(
	ctx context.Context,
	req DateRequest,
	plan datePlan,
	date *model.Date,
	speaker agent.Agent,
	prompt agent.Prompt,
	turn int,
) (*chat.Result, error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanDateTurn))

	usage := core.TraceUsageLogMeta{
		RequestID:   req.RequestID,
		DateID:      date.ID,
		Speaker:     speaker.Name,
		Turn:        turn,
		ProjectName: s.conf.App.Name,
		Provider:    plan.provider,
		Model:       plan.model,
		Endpoint:    usageEndpoint,
	}
	res, err := plan.chat.Complete(ctx, &chat.Request{
		Model:     plan.model,
		System:    prompt.System,
		Prompt:    prompt.User,
		MaxTokens: s.conf.LLM.MaxTokens,
		Speaker:   speaker.Name,
		Turn:      turn,
	})
	if err != nil {
		s.trace.ApplyTraceAttributes(span, usage)
		end(err)
		return nil, err
	}

	date.Usage.Requests++
	date.Usage.PromptTokens += res.Usage.PromptTokens
	date.Usage.CompletionTokens += res.Usage.CompletionTokens
	date.Usage.TotalTokens += res.Usage.TotalTokens

	usage.TokensPrompt = res.Usage.PromptTokens
	usage.TokensCompletion = res.Usage.CompletionTokens
	usage.TokensTotal = res.Usage.TotalTokens
	s.trace.ApplyTraceAttributes(span, usage)
	end(nil)

	if s.logs != nil {
		err := s.logs.LogUsage(ctx, fluentdModel.AIUsageLog{
			RequestID:        usage.RequestID,
			DateID:           usage.DateID,
			Speaker:          usage.Speaker,
			ProjectName:      usage.ProjectName,
			Provider:         usage.Provider,
			Model:            usage.Model,
			Endpoint:         usage.Endpoint,
			TokensPrompt:     usage.TokensPrompt,
			TokensCompletion: usage.TokensCompletion,
			TokensTotal:      usage.TokensTotal,
		})
		if err != nil {
			s.logger.Warn("post usage log failed", zap.String("date_id", date.ID), zap.Error(err))
		}
	}
	return res, nil
}

// plan 驗證請求並決定回合數、模型與 chat service
func (s *DateService) plan(ctx context.Context, req DateRequest) (datePlan, error) {
	if err := s.validate.Struct(req); err != nil {
		return datePlan{}, request.GetError(req, err)
	}

	rounds, err := s.rounds(req.Rounds)
	if err != nil {
		return datePlan{}, err
	}
	modelID, provider, svc, err := s.route(ctx, req)
	if err != nil {
		return datePlan{}, err
	}
	return datePlan{
		rounds:   rounds,
		model:    modelID,
		provider: provider,
		chat:     svc,
		a:        agent.New(agent.SideA, req.ProfileA, req.Theme),
		b:        agent.New(agent.SideB, req.ProfileB, req.Theme),
	}, nil
}

// RoundLimits 預設回合數與上限
func (s *DateService) RoundLimits() (def, limit int) {
	def, limit = s.conf.Date.DefaultRounds, s.conf.Date.MaxRounds
	if limit <= 0 {
		limit = maxRounds
	}
	if def <= 0 || def > limit {
		def = min(defaultRounds, limit)
	}
	return def, limit
}

func (s *DateService) rounds(n int) (int, error) {
	def, limit := s.RoundLimits()
	if n == 0 {
		return def, nil
	}
	if n < 1 || n > limit {
		return 0, cErr.ValidateErr(fmt.Sprintf("rounds must be between 1 and %d", limit))
	}
	return n, nil
}

// route 模型 label 轉回 id。provider 依序取請求指定、label 上的 provider、目錄查詢；
// 目錄外或未註冊的 provider 交給保底 provider
func (s *DateService) route(ctx context.Context, req DateRequest) (string, string, chat.Service, error) {
	modelID, provider := catalog.ParseLabel(req.Model)
	if modelID == "" {
		modelID = s.store.Fallback().Model
	}

	if req.Provider != "" {
		provider = req.Provider
	}
	if provider == "" {
		provider = s.store.ProviderOf(ctx, modelID)
	}
	svc, ok := s.registry.GetChat(core.ProviderName(provider))
	if !ok && req.Provider == "" {
		fallback := s.store.Fallback().Provider
		s.logger.Info("no chat service for provider, routing to default provider",
			zap.String("model", modelID),
			zap.String("provider", provider),
			zap.String("fallback", fallback),
		)
		provider = fallback
		svc, ok = s.registry.GetChat(core.ProviderName(provider))
	}
	if !ok {
		return "", "", nil, cErr.UnsupportedProvider(fmt.Sprintf("provider %q is not configured", provider))
	}
	if !svc.Available() {
		return "", "", nil, cErr.ModelNotAvailable(fmt.Sprintf("model %q needs provider %q, which is not enabled", modelID, provider))
	}
	return modelID, provider, svc, nil
}

// Get 讀取約會紀錄
func (s *DateService) Get(ctx context.Context, dateID string) (*model.Date, error) {
	if s.repo == nil {
		return nil, cErr.ServiceUnavailable("date history is disabled")
	}
	date, err := s.repo.GetByID(ctx, dateID)
	if errors.Is(err, mongoRepo.ErrDateNotFound) {
		return nil, cErr.DateNotFound("date " + dateID + " not found")
	}
	if err != nil {
		return nil, cErr.DatabaseError(err.Error())
	}
	return date, nil
}

// List 最近的約會（不含對話內容）
func (s *DateService) List(ctx context.Context, opts core.ListOptions) ([]*model.Date, error) {
	if s.repo == nil {
		return nil, cErr.ServiceUnavailable("date history is disabled")
	}
	if opts.Size <= 0 || opts.Size > 100 {
		opts.Size = 20
	}
	if opts.Page < 0 {
		opts.Page = 0
	}
	dates, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, cErr.DatabaseError(err.Error())
	}
	return dates, nil
}

func (s *DateService) repoCreate(ctx context.Context, date *model.Date) error {
	return s.repo.Create(ctx, date)
}

func (s *DateService) repoFinish(ctx context.Context, date *model.Date) error {
	return s.repo.Finish(ctx, date)
}

// persist 寫入失敗只記錄，不影響約會本身
func (s *DateService) persist(ctx context.Context, op string, date *model.Date, fn func(context.Context, *model.Date) error) {
	if s.repo == nil {
		return
	}
	if err := fn(ctx, date); err != nil {
		s.logger.Error("persist date failed", zap.String("op", op), zap.String("date_id", date.ID), zap.Error(err))
	}
}

func (s *DateService) logDate(ctx context.Context, req DateRequest, date *model.Date, elapsed time.Duration) {
	if s.logs == nil {
		return
	}
	rec := fluentdModel.DateLog{
		DateID:      date.ID,
		RequestID:   req.RequestID,
		ProjectName: s.conf.App.Name,
		Status:      string(date.Status),
		Provider:    date.Provider,
		Model:       date.Model,
		Theme:       date.Theme,
		Rounds:      date.Rounds,
		Turns:       len(date.Turns),
		TokensTotal: date.Usage.TotalTokens,
		DurationMs:  elapsed.Milliseconds(),
		Error:       date.Error,
	}
	if date.Ratings != nil {
		rec.RatingA, rec.RatingB, rec.Average = date.Ratings.A, date.Ratings.B, date.Ratings.Average
	}
	if err := s.logs.LogDate(ctx, rec); err != nil {
		s.logger.Warn("post date log failed", zap.String("date_id", date.ID), zap.Error(err))
	}
}

func errorMessage(err error) string {
	var appErr *cErr.Error
	if errors.As(err, &appErr) && appErr.ErrorDesc() != "" {
		return appErr.ErrorDesc()
	}
	return err.Error()
}
