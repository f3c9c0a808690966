// Package logger настраивает общий JSON-логгер сервиса диспетчеризации.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New создает logrus-логгер с JSON-форматом и заданным уровнем.
// Некорректный уровень не валит запуск, а откатывается к info.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
