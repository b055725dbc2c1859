package config

import (
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:               "Finance Tracker",
			BodyLimit:             4 * 1024 * 1024,
			ReadTimeout:           15 * time.Second,
			WriteTimeout:          45 * time.Second,
			DisableKeepalive:      false,
			DisableStartupMessage: logger.GetLevel() < logrus.InfoLevel,
			StrictRouting:         false,
			CaseSensitive:         true,
			EnablePrintRoutes:     logger.GetLevel() >= logrus.DebugLevel,
			JSONEncoder:           jsoniter.Marshal,
			JSONDecoder:           jsoniter.Unmarshal,
		})

	return app
}
