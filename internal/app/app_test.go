package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartcursor/internal/config"
)

const seriesCSV = `series,timestamp,value,unit
cpu,2024-01-01T00:00:00Z,10,percent
cpu,2024-01-01T00:01:00Z,20,percent
cpu,2024-01-01T00:02:00Z,30,percent
mem,2024-01-01T00:00:30Z,1500,bytes
mem,2024-01-01T00:03:00Z,3000,bytes
`

func testApp(t *testing.T) (*App, *bytes.Buffer, string) {
	t.Helper()

	dir := t.TempDir()
	input := filepath.Join(dir, "series.csv")
	require.NoError(t, os.WriteFile(input, []byte(seriesCSV), 0o600))

	cfg := &config.Config{
		Display: config.DisplayConfig{Locale: "en-US", Timezone: "utc", DefaultDecimals: -1},
		Render:  config.RenderConfig{Width: 640, Height: 360, Ticks: 4},
		Sweep:   config.SweepConfig{Interval: time.Minute, AlignToBucket: true},
	}
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	a := NewApp(cfg, zerolog.Nop())
	a.Out = &out
	return a, &out, input
}

func TestHover(t *testing.T) {
	a, out, input := testApp(t)
	csvPath := filepath.Join(t.TempDir(), "nested", "records.csv")

	err := a.Hover(context.Background(), HoverOptions{
		Input:   input,
		At:      time.Date(2024, 1, 1, 0, 1, 40, 0, time.UTC),
		CSVPath: csvPath,
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "2024-01-01 00:01:00")
	assert.Contains(t, text, "20%")
	assert.Contains(t, text, "1.5 kB")
	assert.Contains(t, text, "closest time: 2024-01-01 00:01:00")

	file, err := os.Open(csvPath)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"2024-01-01T00:01:40Z", "0", "cpu", "1", "2024-01-01T00:01:00Z", "2024-01-01 00:01:00", "20%", ""}, rows[1])
	assert.Equal(t, "mem", rows[2][2])
}

func TestHoverBeforeAllPoints(t *testing.T) {
	a, out, input := testApp(t)

	err := a.Hover(context.Background(), HoverOptions{Input: input, At: time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "closest time: 2024-01-01 00:00:00")
}

func TestHoverRequiresInput(t *testing.T) {
	a, _, _ := testApp(t)
	assert.Error(t, a.Hover(context.Background(), HoverOptions{}))
}

func TestTicks(t *testing.T) {
	a, out, _ := testApp(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	err := a.Ticks(context.Background(), TicksOptions{From: from, To: from.Add(90 * time.Second), Ticks: 4})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "pattern: HH:mm:ss")
	assert.Contains(t, out.String(), "00:01:30")

	out.Reset()
	err = a.Ticks(context.Background(), TicksOptions{From: from, To: from.Add(3 * 24 * time.Hour), Ticks: 4})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "pattern: MM/DD, HH:mm")
	assert.Contains(t, out.String(), "01/04, 00:00")

	assert.Error(t, a.Ticks(context.Background(), TicksOptions{From: from, To: from}))
}

func TestSweep(t *testing.T) {
	a, out, input := testApp(t)

	require.NoError(t, a.Sweep(context.Background(), SweepOptions{Input: input}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// header plus cursors at 00:00 through 00:03
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "2024-01-01T00:00:00Z")
	assert.Contains(t, lines[1], "cpu=10%")
	assert.Contains(t, lines[4], "mem=3.0 kB")
}

func TestRender(t *testing.T) {
	a, _, input := testApp(t)
	png := filepath.Join(t.TempDir(), "out", "chart.png")
	at := time.Date(2024, 1, 1, 0, 1, 10, 0, time.UTC)

	require.NoError(t, a.Render(context.Background(), RenderOptions{Input: input, PNGPath: png, At: &at}))

	raw, err := os.ReadFile(png)
	require.NoError(t, err)
	require.Greater(t, len(raw), 8)
	assert.Equal(t, "\x89PNG", string(raw[:4]))
}

func TestRenderRequiresPath(t *testing.T) {
	a, _, input := testApp(t)
	assert.Error(t, a.Render(context.Background(), RenderOptions{Input: input}))
}
