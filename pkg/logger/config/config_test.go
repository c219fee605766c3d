package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Configuration
		wantErr bool
	}{
		{name: "info level", cfg: Configuration{Level: INFO_LEVEL, TimeFormat: time.RFC3339Nano}},
		{name: "debug level", cfg: Configuration{Level: DEBUG_LEVEL, TimeFormat: time.RFC3339}},
		{name: "level too low", cfg: Configuration{Level: DEBUG_LEVEL - 1, TimeFormat: time.RFC3339}, wantErr: true},
		{name: "level too high", cfg: Configuration{Level: FATAL_LEVEL + 1, TimeFormat: time.RFC3339}, wantErr: true},
		{name: "empty time format", cfg: Configuration{Level: INFO_LEVEL}, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
