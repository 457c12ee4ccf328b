package structuring

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrohmarconato/curriculo-ingest/internal/llm"
	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

// fakeClient satisfies llm.Client with a canned response.
type fakeClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateContent(ctx, prompt, tier)
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func validResumeJSON(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(types.DefaultResume("João da Silva", "joao@example.com"))
	require.NoError(t, err)
	return string(data)
}

func TestStructure_Success(t *testing.T) {
	client := &fakeClient{response: validResumeJSON(t)}

	resume, err := New(client).Structure(context.Background(), "texto do currículo", types.Hints{})
	require.NoError(t, err)

	assert.Equal(t, "João da Silva", resume.PersonalInfo.Name)
	assert.NotEmpty(t, resume.Experience)
	assert.Equal(t, 1, client.calls, "exactly one remote call")

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "texto do currículo")
}

func TestStructure_FencedResponse(t *testing.T) {
	client := &fakeClient{response: "```json\n" + validResumeJSON(t) + "\n```"}

	resume, err := New(client).Structure(context.Background(), "texto", types.Hints{})
	require.NoError(t, err)
	assert.Equal(t, "João da Silva", resume.PersonalInfo.Name)
}

func TestStructure_NormalizesLevelCasing(t *testing.T) {
	response := strings.ReplaceAll(validResumeJSON(t), "intermediário", "Avançado")
	client := &fakeClient{response: response}

	resume, err := New(client).Structure(context.Background(), "texto", types.Hints{})
	require.NoError(t, err)
	assert.Equal(t, types.SkillAvancado, resume.Skills.Technical[0].Level)
}

func TestStructure_HintsOverrideIdentity(t *testing.T) {
	client := &fakeClient{response: validResumeJSON(t)}

	resume, err := New(client).Structure(context.Background(), "texto", types.Hints{
		Name:  "Maria Oliveira",
		Email: "maria@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria Oliveira", resume.PersonalInfo.Name)
	assert.Equal(t, "maria@example.com", resume.PersonalInfo.Contact.Email)
}

func TestStructure_APIFailureNoRetry(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}

	_, err := New(client).Structure(context.Background(), "texto", types.Hints{})
	require.Error(t, err)

	var apiErr *APICallError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 1, client.calls, "a failed call is not retried")
}

func TestStructure_MalformedJSON(t *testing.T) {
	client := &fakeClient{response: "com certeza! aqui vai o resultado"}

	_, err := New(client).Structure(context.Background(), "texto", types.Hints{})
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestStructure_MissingMandatoryGroup(t *testing.T) {
	resume := types.DefaultResume("João da Silva", "joao@example.com")
	resume.Experience = nil
	data, err := json.Marshal(resume)
	require.NoError(t, err)

	client := &fakeClient{response: string(data)}

	_, err = New(client).Structure(context.Background(), "texto", types.Hints{})
	require.Error(t, err)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}
