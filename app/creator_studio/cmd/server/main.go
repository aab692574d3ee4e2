package main

import (
	"flag"
	"os"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/joho/godotenv"

	"github.com/iWorld-y/creator_studio/app/creator_studio/internal/conf"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	Name    = "creator_studio"
	Version string

	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "app/creator_studio/configs/config.yaml", "config path, eg: -conf config.yaml")
}

// loadBootstrap 读取配置文件，STUDIO_ 前缀的环境变量去掉前缀后可在文件中以 ${KEY} 引用
func loadBootstrap(path string) (*conf.Bootstrap, func(), error) {
	c := config.New(
		config.WithSource(
			file.NewSource(path),
			env.NewSource("STUDIO_"),
		),
	)
	if err := c.Load(); err != nil {
		c.Close()
		return nil, nil, err
	}
	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		c.Close()
		return nil, nil, err
	}
	return &bc, func() { c.Close() }, nil
}

func main() {
	flag.Parse()
	// .env 可选
	_ = godotenv.Load()

	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)

	bc, closeConf, err := loadBootstrap(flagconf)
	if err != nil {
		log.NewHelper(logger).Fatalf("load config %s: %v", flagconf, err)
	}
	defer closeConf()

	app, cleanup, err := initApp(bc.Server, bc.Auth, bc.Studio, logger)
	if err != nil {
		log.NewHelper(logger).Fatalf("init app: %v", err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		log.NewHelper(logger).Errorf("app stopped: %v", err)
		os.Exit(1)
	}
}
