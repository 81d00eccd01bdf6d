package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Maartz/huffman-encoding/internal/config"
	"github.com/Maartz/huffman-encoding/internal/handler"
	"github.com/Maartz/huffman-encoding/internal/repo"
	"github.com/Maartz/huffman-encoding/internal/router"
	"github.com/Maartz/huffman-encoding/internal/service"
	"github.com/Maartz/huffman-encoding/pkg/logger"
)

func main() {
	// 설정/로거 초기화
	cfg := config.Load()
	logg := logger.NewWithLevel(cfg.LogLevel)

	// 저장소: DATABASE_URL 있으면 postgres, 없으면 in-memory
	archiveRepo := repo.NewArchiveRepoInMemory()
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		pool, err := repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		if err := repo.Migrate(ctx, pool); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		archiveRepo = repo.NewArchiveRepoPG(pool)
		logg.Infof("using postgres archive store")
	}

	// 의존성 생성
	archiveSvc := service.NewArchiveService(archiveRepo, logg)
	archiveH := handler.NewArchiveHandler(archiveSvc, cfg.MaxInputBytes)

	// Gin 라우터 생성 및 라우팅 구성
	r := gin.Default()
	router.Register(r, router.Dependencies{
		ArchiveHandler: archiveH,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
