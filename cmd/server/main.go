package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	zerosvc "github.com/zeromicro/go-zero/core/service"
	"go.uber.org/zap"

	"github.com/whiteelite/ixservice/internal/api"
	"github.com/whiteelite/ixservice/internal/config"
	"github.com/whiteelite/ixservice/internal/domain/repositories"
	sdk "github.com/whiteelite/ixservice/internal/infrastructure/blockchain/solana"
	kafka "github.com/whiteelite/ixservice/internal/infrastructure/messaging/kafka/repositories/repository"
	"github.com/whiteelite/ixservice/internal/service"
	"github.com/whiteelite/ixservice/pkg/logger"
)

var (
	configFile = flag.String("f", "etc/server.yaml", "the config file")
	bindAddr   = flag.String("addr", "", "override bind_addr")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	c, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	if *bindAddr != "" {
		c.BindAddr = *bindAddr
	}

	log, err := logger.New(c.LogConf.ToLogOption())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic", zap.Any("recover", r), zap.ByteString("stack", debug.Stack()))
		}
	}()

	client := sdk.NewClient()
	opts := []service.Option{service.WithLogger(log)}

	var audit repositories.MessageQueueProducer
	if c.AuditConf.Enabled() {
		var initAudit repositories.InitializeMessageQueue = kafka.InitializeKafkaMessageQueue
		audit, err = initAudit(kafka.KafkaMessageQueueParams{
			Brokers:          c.AuditConf.BrokerList(),
			Topic:            c.AuditConf.Topic,
			ToProduceBufSize: c.AuditConf.BufferSize,
			Logger:           log.Named("audit"),
		})
		if err != nil {
			return err
		}
		// closed after the http server; late publishes are dropped
		defer audit.Close()
		opts = append(opts, service.WithAudit(audit))
		log.Info("audit stream enabled", zap.Strings("brokers", c.AuditConf.BrokerList()), zap.String("topic", c.AuditConf.Topic))
	}

	server := api.NewServer(c, service.New(client, client, opts...), log)
	if err := server.Listen(); err != nil {
		return fmt.Errorf("listen %s: %w", c.BindAddr, err)
	}

	sg := zerosvc.NewServiceGroup()
	sg.Add(server)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("shutting down services...")
		sg.Stop()
	}()

	log.Info("starting ixservice", zap.String("addr", server.Addr()))
	sg.Start()
	return nil
}
