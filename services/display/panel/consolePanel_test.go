package panel

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestNewConsolePanel(t *testing.T) {
	t.Parallel()

	t.Run("nil writer should error", func(t *testing.T) {
		t.Parallel()

		p, err := NewConsolePanel(ArgsConsolePanel{Width: 128, Height: 32})
		assert.Nil(t, p)
		assert.True(t, p.IsInterfaceNil())
		assert.Equal(t, "nil writer", err.Error())
	})
	t.Run("invalid size should error", func(t *testing.T) {
		t.Parallel()

		p, err := NewConsolePanel(ArgsConsolePanel{Writer: &bytes.Buffer{}, Width: 0, Height: 32})
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errInvalidSize)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		p, err := NewConsolePanel(ArgsConsolePanel{Writer: &bytes.Buffer{}, Width: 128, Height: 64})
		require.NoError(t, err)
		assert.False(t, p.IsInterfaceNil())
		assert.Equal(t, 128, p.Width())
		assert.Equal(t, 64, p.Height())
	})
}

func TestConsolePanel_Present(t *testing.T) {
	t.Parallel()

	t.Run("without a frame should error", func(t *testing.T) {
		t.Parallel()

		p, _ := NewConsolePanel(ArgsConsolePanel{Writer: &bytes.Buffer{}, Width: 8, Height: 8})
		assert.Equal(t, errNoFrame, p.Present())
	})
	t.Run("should print the frame framed by a border", func(t *testing.T) {
		t.Parallel()

		buff := &bytes.Buffer{}
		p, _ := NewConsolePanel(ArgsConsolePanel{Writer: buff, Width: 8, Height: 8, Redraw: true})

		frame := image1bit.NewVerticalLSB(image.Rect(0, 0, 8, 8))
		frame.SetBit(0, 0, image1bit.On)
		frame.SetBit(0, 1, image1bit.On)
		require.NoError(t, p.SetPixelBuffer(frame))
		require.NoError(t, p.Present())

		output := buff.String()
		assert.True(t, strings.HasPrefix(output, clearScreen))
		assert.Contains(t, output, "╭")
		assert.Contains(t, output, "█")
	})
	t.Run("closed panel should error", func(t *testing.T) {
		t.Parallel()

		p, _ := NewConsolePanel(ArgsConsolePanel{Writer: &bytes.Buffer{}, Width: 8, Height: 8})
		require.NoError(t, p.SetPixelBuffer(image1bit.NewVerticalLSB(image.Rect(0, 0, 8, 8))))
		require.NoError(t, p.Close())
		assert.Equal(t, errClosed, p.Present())
	})
}

func TestRenderBlocks(t *testing.T) {
	t.Parallel()

	frame := image1bit.NewVerticalLSB(image.Rect(0, 0, 4, 4))
	frame.SetBit(0, 0, image1bit.On)
	frame.SetBit(0, 1, image1bit.On)
	frame.SetBit(1, 0, image1bit.On)
	frame.SetBit(2, 1, image1bit.On)
	frame.SetBit(3, 3, image1bit.On)

	assert.Equal(t, "█▀▄ \n   ▄", RenderBlocks(frame))
}
