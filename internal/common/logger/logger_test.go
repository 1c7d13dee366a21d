package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitWithWriter_Levels(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "networth-test", false)

	Debug().Msg("hidden")
	Info().Str("key", "value").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "service:networth-test")
	assert.Contains(t, out, "key:value")
}

func TestInitWithWriter_Debug(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "networth-test", true)

	Debug().Msg("shown in debug")

	assert.Contains(t, buf.String(), "shown in debug")
}
