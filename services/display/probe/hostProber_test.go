package probe

import (
	"context"
	"testing"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostProber_Probe(t *testing.T) {
	t.Parallel()

	prober := NewHostProber()
	require.False(t, prober.IsInterfaceNil())

	t.Run("unknown reading should error", func(t *testing.T) {
		t.Parallel()

		out, err := prober.Probe(context.Background(), common.MetricDefinition{Command: "gpu"})
		assert.Empty(t, out)
		assert.Equal(t, errUnknownReading("gpu"), err)
	})
	t.Run("hostname reading", func(t *testing.T) {
		t.Parallel()

		out, err := prober.Probe(context.Background(), common.MetricDefinition{Key: common.MetricHostname})
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})
	t.Run("memory reading has three fields", func(t *testing.T) {
		t.Parallel()

		out, err := prober.Probe(context.Background(), common.MetricDefinition{Command: "memory"})
		require.NoError(t, err)
		assert.Regexp(t, `^[0-9.]+,[0-9.]+,[0-9.]+$`, out)
	})
}

func TestFormatUptime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0m", formatUptime(30))
	assert.Equal(t, "5m", formatUptime(5*60))
	assert.Equal(t, "2h 0m", formatUptime(2*secondsInHour))
	assert.Equal(t, "3d 4h 5m", formatUptime(3*secondsInDay+4*secondsInHour+5*60+59))
	assert.Equal(t, "1d 0m", formatUptime(secondsInDay))
}

func TestTotalMemoryGiB(t *testing.T) {
	t.Parallel()

	total, err := TotalMemoryGiB(context.Background())
	require.NoError(t, err)
	assert.Greater(t, total, 0.0)
}
