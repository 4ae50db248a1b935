package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoyopo/xstate/pkg/machine"
)

func TestDecodePayload(t *testing.T) {
	type togglePayload struct {
		Value bool   `mapstructure:"value"`
		Actor string `mapstructure:"actor"`
	}

	t.Run("decodes into struct", func(t *testing.T) {
		ev := machine.Event{
			Type:    "TOGGLE",
			Payload: machine.Payload{"value": true, "actor": "admin"},
		}

		var p togglePayload
		require.NoError(t, machine.DecodePayload(ev, &p))
		assert.True(t, p.Value)
		assert.Equal(t, "admin", p.Actor)
	})

	t.Run("empty payload", func(t *testing.T) {
		var p togglePayload
		require.NoError(t, machine.DecodePayload(machine.Event{Type: "TOGGLE"}, &p))
		assert.False(t, p.Value)
	})

	t.Run("unknown field fails loudly", func(t *testing.T) {
		ev := machine.Event{
			Type:    "TOGGLE",
			Payload: machine.Payload{"valeu": true},
		}

		var p togglePayload
		err := machine.DecodePayload(ev, &p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TOGGLE")
	})
}
