package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionTypeEquals(t *testing.T) {
	a := FunctionType{Params: []Type{Int, Int}, Return: Bool}
	b := FunctionType{Params: []Type{Int, Int}, Return: Bool}
	c := FunctionType{Params: []Type{Int, Float}, Return: Bool}
	d := FunctionType{Params: []Type{Int, Int}, Return: Int}

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(d))
}

func TestFunctionTypeString(t *testing.T) {
	sig := FunctionType{Params: []Type{Int, String}, Return: Bool}
	assert.Equal(t, "(int, str) bool", sig.String())

	noParams := FunctionType{Params: nil, Return: Nothing}
	assert.Equal(t, "() Nothing", noParams.String())
}
