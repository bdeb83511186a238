package textenc_test

import (
	"testing"

	"github.com/BrandyMint/moysklad/textenc"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestRender_KeepsValidUTF8(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Ошибка авторизации", textenc.Render([]byte("Ошибка авторизации")))
	require.Empty(t, textenc.Render(nil))
}

func TestRender_DecodesWindows1251(t *testing.T) {
	t.Parallel()

	legacy, err := charmap.Windows1251.NewEncoder().String("Неверный логин или пароль")
	require.NoError(t, err)
	require.True(t, textenc.IsLegacy([]byte(legacy)))

	require.Equal(t, "Неверный логин или пароль", textenc.Render([]byte(legacy)))
}

func TestRenderString(t *testing.T) {
	t.Parallel()

	legacy := string([]byte{0xCF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2})

	require.Equal(t, "Привет", textenc.RenderString(legacy))
	require.Equal(t, "plain", textenc.RenderString("plain"))
}
