package logger_test

import (
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/wodanio-group/bos/internal/logger"
)

func TestLogger(t *testing.T) {
	type testCase struct {
		name        string
		cfg         logger.Log
		expectedErr error
	}

	testCases := []testCase{
		{
			name: "no logger enabled log level not set",
			cfg: logger.Log{
				LogLevel:    "",
				ServiceName: "test",
				AppName:     "test",
			},
		},
		{
			name: "console enabled log level info",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
		},
		{
			name: "console enabled console writer enabled",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
		},
		{
			name: "console enabled trace with stack",
			cfg: logger.Log{
				LogLevel:     "trace",
				ServiceName:  "test",
				AppName:      "test",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true},
			},
		},
		{
			name: "missing service name",
			cfg: logger.Log{
				LogLevel: "info",
				AppName:  "test",
			},
			expectedErr: logger.ErrServiceNameIsEmpty,
		},
		{
			name: "missing app name",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
			},
			expectedErr: logger.ErrAppNameIsEmpty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := logger.Init(tc.cfg)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatalf("want error %v, got nil", tc.expectedErr)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			log.Info().Str("case", tc.name).Msg("logger initialized")
		})
	}
}

func TestLoggerUnsupportedLevel(t *testing.T) {
	err := logger.Init(logger.Log{
		LogLevel:    "loud",
		ServiceName: "test",
		AppName:     "test",
	})
	if err == nil {
		t.Fatal("want error for unsupported log level")
	}
}
