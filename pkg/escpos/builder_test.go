package escpos

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderInitializes(t *testing.T) {
	b := NewBuilder(48)
	assert.Equal(t, []byte{cmdESC, '@'}, b.Bytes())
	assert.Equal(t, 48, b.Width())
}

func TestNewBuilderDefaultWidth(t *testing.T) {
	b := NewBuilder(0)
	assert.Equal(t, 48, b.Width())
}

func TestLineAppendsFeed(t *testing.T) {
	b := NewBuilder(32)
	b.Line("hello")
	assert.True(t, bytes.HasSuffix(b.Bytes(), []byte("hello\n")))
}

func TestTwoColPadsToWidth(t *testing.T) {
	b := NewBuilder(20)
	b.TwoCol("Total", "99.00")

	line := b.Bytes()[2:] // skip init
	assert.Equal(t, "Total          99.00\n", string(line))
	assert.Len(t, "Total          99.00", 20)
}

func TestTwoColNeverCollides(t *testing.T) {
	b := NewBuilder(10)
	b.TwoCol("a very long label", "12345.00")
	assert.Contains(t, string(b.Bytes()), "a very long label 12345.00")
}

func TestItemRow(t *testing.T) {
	b := NewBuilder(30)
	b.ItemRow(2, "Galaxy A15", "236.00")
	assert.Contains(t, string(b.Bytes()), "2x Galaxy A15")
	assert.True(t, bytes.HasSuffix(b.Bytes(), []byte("236.00\n")))
}

func TestRule(t *testing.T) {
	b := NewBuilder(8)
	b.Rule('-')
	assert.True(t, bytes.HasSuffix(b.Bytes(), []byte("--------\n")))
}

func TestCutCommands(t *testing.T) {
	b := NewBuilder(32)
	b.Cut()
	assert.True(t, bytes.HasSuffix(b.Bytes(), []byte{cmdGS, 'V', 0x00}))

	b.PartialCut()
	assert.True(t, bytes.HasSuffix(b.Bytes(), []byte{cmdGS, 'V', 0x01}))
}

func TestReset(t *testing.T) {
	b := NewBuilder(32)
	b.Line("stale").Cut()
	b.Reset()
	assert.Equal(t, []byte{cmdESC, '@'}, b.Bytes())
}

func TestNewTransportFromConfig(t *testing.T) {
	tr, err := NewTransportFromConfig("none", "", "")
	assert.NoError(t, err)
	assert.False(t, tr.Available())
	assert.NoError(t, tr.Send([]byte("x")))

	_, err = NewTransportFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewTransportFromConfig("network", "", "")
	assert.Error(t, err)

	_, err = NewTransportFromConfig("laser", "", "")
	assert.Error(t, err)

	tr, err = NewTransportFromConfig("usb", "/dev/usb/lp0", "")
	assert.NoError(t, err)
	assert.NotNil(t, tr)
}
