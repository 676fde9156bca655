package diagram

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
	"git.home.luguber.info/inful/moduledoc/internal/model"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

func app() *model.Application {
	return &model.Application{
		Name: "Shop",
		Modules: []*model.Module{
			{Name: "order-mgmt", DisplayName: "Orders", Components: []*model.Component{
				{Module: "order-mgmt", Type: "com.example.orders.OrderService"},
			}},
			{Name: "billing", DisplayName: "Billing"},
		},
	}
}

func TestRenderPlantUML(t *testing.T) {
	want := "@startuml\n" +
		"title Shop\n" +
		"package \"Orders\" as order_mgmt {\n" +
		"  component \"OrderService\" as order_mgmt_com_example_orders_OrderService\n" +
		"}\n" +
		"package \"Billing\" as billing {\n" +
		"}\n" +
		"@enduml\n"
	assert.Equal(t, want, RenderPlantUML(app()))
}

func TestPlantUML_Generate(t *testing.T) {
	m := output.NewManager(t.TempDir(), "", "")
	require.NoError(t, PlantUML{}.Generate(context.Background(), m, app()))

	data, err := os.ReadFile(m.Path("components.puml"))
	require.NoError(t, err)
	assert.Equal(t, RenderPlantUML(app()), string(data))
}

func TestAPISchema(t *testing.T) {
	m := output.NewManager(t.TempDir(), "", "")
	ctx := context.Background()

	require.NoError(t, APISchema{}.Generate(ctx, m, app()))
	assert.False(t, m.Exists("openapi.json"), "no source configured is a no-op")

	src := filepath.Join(t.TempDir(), "openapi.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"openapi":"3.0.1"}`), 0o600))
	require.NoError(t, APISchema{Source: src}.Generate(ctx, m, app()))
	data, err := os.ReadFile(m.Path("openapi.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"openapi":"3.0.1"}`, string(data))

	// Already in place: nothing to copy.
	require.NoError(t, APISchema{Source: m.Path("openapi.json")}.Generate(ctx, m, app()))

	err = APISchema{Source: filepath.Join(t.TempDir(), "missing.json")}.Generate(ctx, m, app())
	require.Error(t, err)
	assert.True(t, ferrors.IsIOFailure(err))
}

func TestAPISchema_BuildRootFallback(t *testing.T) {
	root := t.TempDir()
	m := output.NewManager(root, "", "")
	require.NoError(t, os.WriteFile(filepath.Join(root, "openapi.json"), []byte(`{"openapi":"3.1.0"}`), 0o600))

	require.NoError(t, APISchema{}.Generate(context.Background(), m, app()))

	data, err := os.ReadFile(m.Path("openapi.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"openapi":"3.1.0"}`, string(data))
}

func TestChain(t *testing.T) {
	m := output.NewManager(t.TempDir(), "", "")
	var order []string
	record := func(name string, err error) Generator {
		return GeneratorFunc(func(context.Context, *output.Manager, *model.Application) error {
			order = append(order, name)
			return err
		})
	}
	boom := errors.New("boom")

	err := Chain{record("a", nil), nil, record("b", boom), record("c", nil)}.Generate(context.Background(), m, app())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, order)
}
