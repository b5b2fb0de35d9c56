package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validVisionJSON = `{
  "faceShape": "ovalado",
  "skinTone": "cálido",
  "suggestedHair": "Bob Parisino",
  "suggestedMakeup": "Glow Natural",
  "suggestedNails": "Rojo Clásico",
  "reasoning": "Sus rasgos armonizan con líneas suaves."
}`

func TestAnalyzeValidResponse(t *testing.T) {
	gen := &fakeGenerator{visionResponse: validVisionJSON}
	m := NewMirror(gen, quietLogger())

	analysis, err := m.Analyze(context.Background(), "aW1hZ2Vu")
	require.NoError(t, err)
	require.NotNil(t, analysis)

	assert.Equal(t, "ovalado", analysis.FaceShape)
	assert.Equal(t, "Bob Parisino", analysis.SuggestedHair)
	assert.NotEmpty(t, analysis.Reasoning)
}

func TestAnalyzeStripsCodeFences(t *testing.T) {
	gen := &fakeGenerator{visionResponse: "```json\n" + validVisionJSON + "\n```"}
	m := NewMirror(gen, quietLogger())

	analysis, err := m.Analyze(context.Background(), "aW1hZ2Vu")
	require.NoError(t, err)
	assert.Equal(t, "cálido", analysis.SkinTone)
}

func TestAnalyzeStripsDataURLPrefix(t *testing.T) {
	gen := &fakeGenerator{visionResponse: validVisionJSON}
	m := NewMirror(gen, quietLogger())

	_, err := m.Analyze(context.Background(), "data:image/jpeg;base64,aW1hZ2Vu")
	require.NoError(t, err)

	// al proveedor solo le llega el base64 desnudo
	assert.Equal(t, "aW1hZ2Vu", gen.lastImage)
}

func TestAnalyzePassesBareBase64Untouched(t *testing.T) {
	gen := &fakeGenerator{visionResponse: validVisionJSON}
	m := NewMirror(gen, quietLogger())

	_, err := m.Analyze(context.Background(), "aW1hZ2Vu")
	require.NoError(t, err)
	assert.Equal(t, "aW1hZ2Vu", gen.lastImage)
}

func TestAnalyzeRejectsInvalidJSON(t *testing.T) {
	gen := &fakeGenerator{visionResponse: "Su rostro es ovalado y le recomiendo..."}
	m := NewMirror(gen, quietLogger())

	analysis, err := m.Analyze(context.Background(), "aW1hZ2Vu")
	require.Error(t, err)
	assert.Nil(t, analysis)

	var malformed *MalformedResponse
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, malformed.Raw, "ovalado")
}

func TestAnalyzeRejectsIncompleteSchema(t *testing.T) {
	// esquema estricto: un campo vacío invalida toda la respuesta
	gen := &fakeGenerator{visionResponse: `{
	  "faceShape": "ovalado",
	  "skinTone": "cálido",
	  "suggestedHair": "Bob Parisino",
	  "suggestedMakeup": "Glow Natural",
	  "suggestedNails": "Rojo Clásico",
	  "reasoning": ""
	}`}
	m := NewMirror(gen, quietLogger())

	_, err := m.Analyze(context.Background(), "aW1hZ2Vu")

	var malformed *MalformedResponse
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, malformed.Reason, "reasoning")
}

func TestAnalyzeProviderErrorPropagates(t *testing.T) {
	gen := &fakeGenerator{visionErr: errors.New("modelo sobrecargado")}
	m := NewMirror(gen, quietLogger())

	_, err := m.Analyze(context.Background(), "aW1hZ2Vu")
	require.Error(t, err)

	var malformed *MalformedResponse
	assert.False(t, errors.As(err, &malformed))
}

func TestVisionPromptListsCollections(t *testing.T) {
	gen := &fakeGenerator{visionResponse: validVisionJSON}
	m := NewMirror(gen, quietLogger())

	_, err := m.Analyze(context.Background(), "aW1hZ2Vu")
	require.NoError(t, err)

	assert.Contains(t, gen.lastPrompt, "visagismo")
	assert.Contains(t, gen.lastPrompt, "Colección Cabello")
	assert.Contains(t, gen.lastPrompt, "faceShape")
}
