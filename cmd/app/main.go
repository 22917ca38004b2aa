package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"lovedj/config"
	"lovedj/internal/command"
	"lovedj/internal/log"
	"lovedj/utils/path"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	_ "lovedj/cmd/docs"
)

var (
	rootPath = path.RootPath()
	Version  string
	envPath  string
	yamlPath string
	conf     *config.Configuration
)

// configFlags 全域設定檔參數，所有子命令共用
func configFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.StringVarP(&envPath, "env", "e", "", "Environment file, e.g. --env .env")
	fs.StringVarP(&yamlPath, "config", "c", "", "YAML config file, e.g. --config config.yaml")
	return fs
}

func init() {
	cobra.OnInitialize(func() {
		if envPath != "" && yamlPath != "" {
			fmt.Println("同時指定 --env 與 --config，將以 --env 優先")
		}
		initConfig()
	})
}

// @title        lovedj API
// @version      1.0
// @description  LLM 初次約會模擬器：模型目錄、約會執行與紀錄查詢
// @host         localhost:3000
// @basePath     /
func main() {
	rootCmd := &cobra.Command{
		Use:     "app",
		Short:   "love.dj first-date simulator",
		Version: Version,
		Run: func(cmd *cobra.Command, args []string) {
			if conf == nil {
				panic("config is nil! Check config/initConfig logic.")
			}
			// 初始化 logger
			logger, err := log.NewLogger(conf)
			if err != nil {
				panic(fmt.Errorf("init logger failed: %w", err))
			}
			defer logger.Sync()
			app, cleanup, err := wireApp(conf, logger)
			if err != nil {
				panic(err)
			}
			defer cleanup()

			logger.Info("start app ...")
			if err := app.Run(); err != nil {
				panic(err)
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			logger.Info("shutdown app ...")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := app.Stop(ctx); err != nil {
				panic(err)
			}
		},
	}

	rootCmd.PersistentFlags().AddFlagSet(configFlags())

	command.Register(rootCmd, func(configure ...command.Configure) (*command.Command, func(), error) {
		if conf == nil {
			return nil, nil, fmt.Errorf("config is nil")
		}
		for _, fn := range configure {
			fn(conf)
		}
		logger, err := log.NewLogger(conf)
		if err != nil {
			return nil, nil, fmt.Errorf("init logger failed: %w", err)
		}
		cmdSrv, cleanup, err := wireCommand(conf, logger)
		if err != nil {
			_ = logger.Sync()
			return nil, nil, err
		}
		return cmdSrv, func() {
			cleanup()
			_ = logger.Sync()
		}, nil
	})

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func initConfig() {
	v := viper.NewWithOptions(viper.KeyDelimiter("__"))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	useFile := false

	if envPath != "" {
		useFile = true
		envPath = path.Resolve(envPath, rootPath)
		fmt.Println("load .env config:", envPath)
		v.SetConfigFile(envPath)
		v.SetConfigType("env")
	} else if yamlPath != "" {
		useFile = true
		yamlPath = path.Resolve(yamlPath, rootPath, "conf")
		fmt.Println("load yaml config:", yamlPath)
		v.SetConfigFile(yamlPath)
		v.SetConfigType("yaml")
	} else {
		fmt.Println("No configuration file specified, using environment variables only.")
	}

	if useFile {
		if ok, err := path.Exists(v.ConfigFileUsed()); err != nil || !ok {
			panic(fmt.Errorf("config file not found: %s", v.ConfigFileUsed()))
		}
		if err := v.ReadInConfig(); err != nil {
			panic(fmt.Errorf("read config failed: %w", err))
		}
		v.WatchConfig()
		v.OnConfigChange(func(in fsnotify.Event) {
			fmt.Println("config file changed:", in.Name)
			if err := v.Unmarshal(&conf); err != nil {
				fmt.Println("unmarshal on change failed:", err)
			}
		})
	}

	bindEnvs(v, reflect.TypeOf(config.Configuration{}))

	if err := v.Unmarshal(&conf); err != nil {
		fmt.Println("unmarshal config failed:", err)
	}

}
func bindEnvs(v *viper.Viper, t reflect.Type, path ...string) {
	// 若遇到指標，取其 Elem
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			tag = field.Name
		}
		newPath := append(path, tag)
		if field.Type.Kind() == reflect.Struct || (field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct) {
			bindEnvs(v, field.Type, newPath...)
		} else {
			v.BindEnv(strings.Join(newPath, "__"))
		}
	}
}
