package jsonvalue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/domain/jsonvalue"
)

func TestParse_PreservesMemberOrder(t *testing.T) {
	v, err := jsonvalue.Parse(`{"zeta":1,"alpha":2,"mid":3}`)
	require.NoError(t, err)

	var keys []string
	for _, m := range v.Members() {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
}

func TestParse_DuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	v, err := jsonvalue.Parse(`{"a":1,"b":2,"a":3}`)
	require.NoError(t, err)

	members := v.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "a", members[0].Key)
	assert.Equal(t, "3", members[0].Value.Text())
	assert.Equal(t, "b", members[1].Key)
}

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		in   string
		kind jsonvalue.Kind
		text string
	}{
		{`null`, jsonvalue.KindNull, ""},
		{`true`, jsonvalue.KindBool, ""},
		{`-12.5e3`, jsonvalue.KindNumber, "-12.5e3"},
		{`"hi\nthere"`, jsonvalue.KindString, "hi\nthere"},
		{`  42  `, jsonvalue.KindNumber, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := jsonvalue.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.text, v.Text())
		})
	}
}

func TestParse_Nested(t *testing.T) {
	v, err := jsonvalue.Parse(`{"a":[1,{"b":null}],"c":{}}`)
	require.NoError(t, err)

	a, ok := v.Get("a")
	require.True(t, ok)
	require.Equal(t, jsonvalue.KindArray, a.Kind())
	require.Len(t, a.Items(), 2)
	b, ok := a.Items()[1].Get("b")
	require.True(t, ok)
	assert.Equal(t, jsonvalue.KindNull, b.Kind())

	c, ok := v.Get("c")
	require.True(t, ok)
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.IsContainer())
}

func TestParse_Errors(t *testing.T) {
	inputs := []string{
		``,
		`not json`,
		`{"a":1,}`,
		`[1 2]`,
		`{"a":1} trailing`,
		`1 2`,
		`{"a"`,
		`"x": 5`,
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := jsonvalue.Parse(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrParse)
			assert.Contains(t, err.Error(), "JSON Parse Error")
			assert.Error(t, jsonvalue.Valid(in))
		})
	}
}

func TestObjectConstructor(t *testing.T) {
	v := jsonvalue.Object(
		jsonvalue.Member{Key: "x", Value: jsonvalue.Number("1")},
		jsonvalue.Member{Key: "y", Value: jsonvalue.Bool(true)},
	)
	assert.Equal(t, 2, v.Len())
	y, ok := v.Get("y")
	require.True(t, ok)
	assert.True(t, y.Bool())

	_, ok = jsonvalue.String("s").Get("x")
	assert.False(t, ok)
	assert.Nil(t, jsonvalue.String("s").Items())
	assert.Equal(t, "boolean", jsonvalue.KindBool.String())
}
