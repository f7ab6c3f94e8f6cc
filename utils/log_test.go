package utils_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/NethermindEth/aap-arbitrary/core/felt"
	"github.com/NethermindEth/aap-arbitrary/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var levelStrings = map[*utils.LogLevel]string{
	utils.NewLogLevel(utils.DEBUG): "debug",
	utils.NewLogLevel(utils.INFO):  "info",
	utils.NewLogLevel(utils.WARN):  "warn",
	utils.NewLogLevel(utils.ERROR): "error",
}

func TestLogLevelString(t *testing.T) {
	for level, str := range levelStrings {
		t.Run("level "+str, func(t *testing.T) {
			assert.Equal(t, str, level.String())
		})
	}
}

// Tests are similar for Set and UnmarshalText since LogLevel implements both
// pflag.Value and encoding.TextUnmarshaler.
func TestLogLevelSet(t *testing.T) {
	for level, str := range levelStrings {
		t.Run("level "+str, func(t *testing.T) {
			l := utils.NewLogLevel(utils.ERROR)
			require.NoError(t, l.Set(str))
			assert.Equal(t, *level, *l)
		})
		uppercase := strings.ToUpper(str)
		t.Run("level "+uppercase, func(t *testing.T) {
			l := utils.NewLogLevel(utils.ERROR)
			require.NoError(t, l.Set(uppercase))
			assert.Equal(t, *level, *l)
		})
	}

	t.Run("unknown log level", func(t *testing.T) {
		l := new(utils.LogLevel)
		require.ErrorIs(t, l.Set("blah"), utils.ErrUnknownLogLevel)
	})
}

func TestLogLevelUnmarshalText(t *testing.T) {
	for level, str := range levelStrings {
		t.Run("level "+str, func(t *testing.T) {
			l := utils.NewLogLevel(utils.ERROR)
			require.NoError(t, l.UnmarshalText([]byte(str)))
			assert.Equal(t, *level, *l)
		})
	}

	t.Run("unknown log level", func(t *testing.T) {
		l := new(utils.LogLevel)
		require.ErrorIs(t, l.UnmarshalText([]byte("blah")), utils.ErrUnknownLogLevel)
	})
}

func TestLogLevelMarshalJSON(t *testing.T) {
	for level, str := range levelStrings {
		t.Run("level "+str, func(t *testing.T) {
			b, err := json.Marshal(level)
			require.NoError(t, err)
			assert.Equal(t, `"`+str+`"`, string(b))
		})
	}
}

func TestLogLevelType(t *testing.T) {
	assert.Equal(t, "LogLevel", new(utils.LogLevel).Type())
}

func TestZapLogger(t *testing.T) {
	for level, str := range levelStrings {
		t.Run("level "+str, func(t *testing.T) {
			_, err := utils.NewZapLogger(*level, true)
			require.NoError(t, err)
		})
	}

	t.Run("unknown level", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = utils.NewZapLogger(utils.LogLevel(42), false)
		})
	})
}

func TestNopLoggers(t *testing.T) {
	for _, log := range []utils.SimpleLogger{utils.NewNopLogger(), utils.NewNopZapLogger()} {
		assert.NotPanics(t, func() {
			log.Debugw("debug", "k", 1)
			log.Infow("info")
			log.Warnw("warn", "k", "v")
			log.Errorw("error")
		})
	}
}

func TestHexHelpers(t *testing.T) {
	want := felt.FromUint64(42)
	assert.True(t, utils.HexToFelt(t, "0x2a").Equal(&want))
	assert.Equal(t, []byte{0xde, 0xad}, utils.HexToBytes(t, "0xdead"))
	assert.Equal(t, []byte{0xbe, 0xef}, utils.HexToBytes(t, "beef"))
}
