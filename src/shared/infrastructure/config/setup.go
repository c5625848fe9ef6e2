package config

import (
	"github.com/iagobrdev/orders-bootcamp/src/shared/infrastructure/httpx"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// GzipSharedConfig contiene la configuración para el módulo compartido de compresión
type GzipSharedConfig struct {
	EnableGzip          bool     `yaml:"enable_gzip"`
	AlwaysTryDecompress bool     `yaml:"always_try_decompress"`
	GzipExcludedPaths   []string `yaml:"excluded_paths"`
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() GzipSharedConfig {
	return GzipSharedConfig{
		EnableGzip:          true,
		AlwaysTryDecompress: true,
		GzipExcludedPaths:   []string{"/health", "/metrics"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config GzipSharedConfig) {
	router.Use(httpx.RequestID())

	if !config.EnableGzip {
		return
	}

	opts := []gzip.Option{gzip.WithExcludedPaths(config.GzipExcludedPaths)}
	// Descomprimir requests con Content-Encoding: gzip
	if config.AlwaysTryDecompress {
		opts = append(opts, gzip.WithDecompressFn(gzip.DefaultDecompressHandle))
	}
	router.Use(gzip.Gzip(gzip.DefaultCompression, opts...))
}
