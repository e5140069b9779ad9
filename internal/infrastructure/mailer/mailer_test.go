package mailer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-account-api/config"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "regular address", in: "alice@example.com", want: "al***@exa****.com"},
		{name: "short local part", in: "ab@cd.org", want: "a*@c*.org"},
		{name: "single characters", in: "a@b.c", want: "*@*.c"},
		{name: "domain without dot", in: "user@localhost", want: "us**@loca*****"},
		{name: "multi-label domain keeps tail", in: "bob@mail.example.co.uk", want: "b**@ma**.example.co.uk"},
		{name: "not an address", in: "plainstring", want: "plainstring"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.in))
		})
	}
}

func TestRenderTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "greeting.html"),
		[]byte("<p>Hello {{.Username}} from {{.ProjectName}}</p>"),
		0o644,
	))

	t.Run("renders environment", func(t *testing.T) {
		out, err := renderTemplate(dir, "greeting.html", map[string]any{
			"Username":    "alice01",
			"ProjectName": "useraccountapi",
		})
		require.NoError(t, err)
		assert.Equal(t, "<p>Hello alice01 from useraccountapi</p>", out)
	})

	t.Run("escapes html in values", func(t *testing.T) {
		out, err := renderTemplate(dir, "greeting.html", map[string]any{
			"Username":    "<script>x</script>",
			"ProjectName": "useraccountapi",
		})
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
	})

	t.Run("missing template file", func(t *testing.T) {
		_, err := renderTemplate(dir, "absent.html", nil)
		require.Error(t, err)
	})
}

func TestClient_DisabledSMTPIsNoOp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "new_account.html"),
		[]byte("<p>{{.ProjectName}}: welcome {{.Username}} ({{.Email}})</p>"),
		0o644,
	))

	cfg := config.Config{
		App:     config.APP{Name: "useraccountapi"},
		SMTP:    config.SMTP{Enabled: false},
		OpenAPI: config.OpenAPI{TemplatesDir: dir},
	}
	c, err := New(cfg, zap.NewNop())
	require.NoError(t, err)

	err = c.SendNewAccountEmail(context.Background(), "alice@example.com", "alice01")
	assert.NoError(t, err)
}

func TestNew_EnabledSMTPRequiresAddr(t *testing.T) {
	cfg := config.Config{
		App:  config.APP{Name: "useraccountapi"},
		SMTP: config.SMTP{Enabled: true},
	}
	_, err := New(cfg, zap.NewNop())
	require.Error(t, err)
}
