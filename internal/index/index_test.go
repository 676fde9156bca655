package index

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/moduledoc/internal/model"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

func sampleApp() *model.Application {
	return &model.Application{
		Name: "Shop",
		Modules: []*model.Module{
			{Name: "orders", DisplayName: "Orders"},
			{Name: "billing", DisplayName: "Billing & Invoices"},
		},
	}
}

func TestRender(t *testing.T) {
	want := "== Shop\n\n" +
		"=== Reference documentation:\n\n" +
		"xref:openapi.json#[Rest API]\n\n" +
		"xref:components.puml#[Components]\n\n" +
		"<<module-orders.adoc#,Orders Module>>\n\n" +
		"<<module-billing.adoc#,Billing & Invoices Module>>\n\n" +
		"<<configuration.adoc#,Configuration>>\n\n"

	assert.Equal(t, want, Render(sampleApp()))
}

func TestRender_NoModules(t *testing.T) {
	got := Render(&model.Application{Name: "Empty"})
	assert.Equal(t, "== Empty\n\n=== Reference documentation:\n\nxref:openapi.json#[Rest API]\n\nxref:components.puml#[Components]\n\n<<configuration.adoc#,Configuration>>\n\n", got)
}

func TestWrite_ReplacesPreviousIndex(t *testing.T) {
	m := output.NewManager(t.TempDir(), "", "")
	require.NoError(t, m.WriteFile(DocFile, []byte("an old, much longer index document that must disappear entirely")))

	require.NoError(t, Write(m, sampleApp()))

	data, err := os.ReadFile(m.Path(DocFile))
	require.NoError(t, err)
	assert.Equal(t, Render(sampleApp()), string(data))
	assert.False(t, m.Exists("configuration.adoc"), "the configuration reference may dangle")
}
