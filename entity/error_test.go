package entity_test

import (
	"testing"
	"time"

	"github.com/BrandyMint/moysklad/entity"
	"github.com/BrandyMint/moysklad/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	t.Parallel()

	doc, err := entity.ParseError([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<error>
  <uid>kiiiosk@wannabemoscow</uid>
  <moment>20150609112728449</moment>
  <message>Недостаточно прав для выполнения операции.</message>
</error>`))

	require.NoError(t, err)
	assert.Equal(t, "kiiiosk@wannabemoscow", doc.UID)
	assert.Equal(t, "20150609112728449", doc.Moment)
	assert.Equal(t, "Недостаточно прав для выполнения операции.", doc.Message)
	assert.Equal(t, doc.Message, doc.Error())
}

func TestParseError_Windows1251Declaration(t *testing.T) {
	t.Parallel()

	payload := testutil.CP1251(t, `<?xml version="1.0" encoding="windows-1251"?><error><message>Объект не найден</message></error>`)

	doc, err := entity.ParseError(payload)

	require.NoError(t, err)
	assert.Equal(t, "Объект не найден", doc.Message)
}

func TestParseError_MissingMessage(t *testing.T) {
	t.Parallel()

	_, err := entity.ParseError([]byte(`<error><uid>admin@shop</uid></error>`))

	require.ErrorIs(t, err, entity.ErrInvalidError)
	require.Contains(t, err.Error(), "message is required")
}

func TestParseError_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "not xml", body: "upstream timeout"},
		{name: "wrong root", body: "<response><message>x</message></response>"},
		{name: "unterminated", body: "<error><message>x</message>"},
		{name: "empty", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := entity.ParseError([]byte(tt.body))

			require.ErrorIs(t, err, entity.ErrParseError)
		})
	}
}

func TestError_Time(t *testing.T) {
	t.Parallel()

	doc := &entity.Error{Moment: "20150609112728449"} //nolint:exhaustruct

	ts, err := doc.Time(time.UTC)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2015, 6, 9, 11, 27, 28, 449_000_000, time.UTC), ts)

	_, err = (&entity.Error{Moment: "2015"}).Time(time.UTC) //nolint:exhaustruct
	require.ErrorIs(t, err, entity.ErrInvalidError)
}

func TestParseError_MislabelledWindows1251(t *testing.T) {
	t.Parallel()

	payload := []byte(`<?xml version="1.0" encoding="UTF-8"?> <error> <uid>kiiiosk@wannabemoscow</uid> ` +
		`<moment>20150609112728449</moment> <message>`)
	payload = append(payload, testutil.CP1251(t, "Недостаточно прав для выполнения операции.")...)
	payload = append(payload, []byte(`</message> </error>`)...)

	doc, err := entity.ParseError(payload)

	require.NoError(t, err)
	assert.Equal(t, "kiiiosk@wannabemoscow", doc.UID)
	assert.Equal(t, "Недостаточно прав для выполнения операции.", doc.Message)
}
