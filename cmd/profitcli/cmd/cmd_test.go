package cmd_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentabilidad-api/cmd/profitcli/cmd"
	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

const scenario = `{
  "product": {"cost_item": 1, "tax_percent": 0},
  "channels": [{"type": "physical_store", "data": {"price": "3"}}]
}`

// ─────────────────────────────────────────────────────────────────────────────

func TestEvaluate_JSONDesdeStdin(t *testing.T) {
	out, err := run(t, scenario, "evaluate", "--format", "json", "-")
	require.NoError(t, err)

	var got dto.PortfolioResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Channels, 1)
	assert.Equal(t, "2", got.Channels[0].NetProfit.String())
	assert.Equal(t, "66.67", got.Channels[0].MarginPercent.String())
	assert.Equal(t, "physical_store", got.BestChannel)
}

func TestEvaluate_Tabla(t *testing.T) {
	out, err := run(t, scenario, "evaluate", "--locale", "en-US", "--currency", "USD", "-")
	require.NoError(t, err)

	assert.Contains(t, out, "Tienda física")
	assert.Contains(t, out, "$ 2.00")
	assert.Contains(t, out, "Mejor canal:     physical_store")
}

func TestEvaluate_CanalDesconocido(t *testing.T) {
	_, err := run(t, `{"product":{"cost_item":1},"channels":[{"type":"wish"}]}`, "evaluate", "-")
	assert.ErrorIs(t, err, domain.ErrUnknownChannel)
}

func TestEvaluate_ArchivoInexistente(t *testing.T) {
	_, err := run(t, "", "evaluate", "/no/existe.json")
	assert.Error(t, err)
}

func TestChannels_ListaElCatalogo(t *testing.T) {
	out, err := run(t, "", "channels")
	require.NoError(t, err)

	assert.Contains(t, out, "[marketplace]")
	assert.Contains(t, out, "amazon_fba")
	assert.Contains(t, out, "physical_store")
}

func TestChannels_JSON(t *testing.T) {
	out, err := run(t, "", "channels", "-f", "json")
	require.NoError(t, err)

	var groups []dto.ChannelGroupResponse
	require.NoError(t, json.Unmarshal([]byte(out), &groups))
	total := 0
	for _, g := range groups {
		total += len(g.Channels)
	}
	assert.Equal(t, 14, total)
}
