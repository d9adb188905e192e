package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Format(t *testing.T) {
	err := E(CodeNotFound, "get tool", "tool not found", nil)
	assert.Equal(t, "get tool: NOT_FOUND: tool not found", err.Error())

	err = E(CodeInternal, "", "", nil)
	assert.Equal(t, "INTERNAL", err.Error())

	err = E(CodeInvalidArgument, "", "", errors.New("boom"))
	assert.Equal(t, "INVALID_ARGUMENT: boom", err.Error())
}

func TestInvalid_JoinsSentinels(t *testing.T) {
	err := Invalid("set tool", ErrInvalidTool,
		Problem{Err: ErrInvalidScore, Detail: "scores[Writing]: 11 out of range"},
		Problem{Err: ErrNegativePrice, Detail: "price.paid: -1"},
		Problem{Err: ErrInvalidScore, Detail: "scores[Coding]: -2 out of range"},
	)

	require.ErrorIs(t, err, ErrInvalidTool)
	require.ErrorIs(t, err, ErrInvalidScore)
	require.ErrorIs(t, err, ErrNegativePrice)
	require.NotErrorIs(t, err, ErrEmptyScores)
	assert.Contains(t, err.Error(), "scores[Coding]")
	assert.True(t, IsValidation(err))
}

func TestUnknownToolsError_SortsNames(t *testing.T) {
	err := UnknownToolsError("set use case", []string{"Zeta", "Alpha"})

	require.ErrorIs(t, err, ErrUnknownTools)
	assert.Equal(t, "Alpha,Zeta", err.Meta["unknown"])
	assert.Contains(t, err.Error(), "Alpha, Zeta")
}

func TestWrap_KeepsExistingOp(t *testing.T) {
	inner := NotFound("get tool", ErrToolNotFound, "Ghost")
	wrapped := Wrap(CodeInternal, "render", inner)
	assert.Same(t, inner, wrapped)

	bare := E(CodeNotFound, "", "missing", ErrToolNotFound)
	wrapped = Wrap(CodeInternal, "render", bare)
	assert.Equal(t, "render", wrapped.Op)
	assert.Equal(t, CodeNotFound, wrapped.Code)

	assert.Nil(t, Wrap(CodeInternal, "render", nil))
}

func TestCodeFrom(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code ErrorCode
		ok   bool
	}{
		{name: "nil", err: nil, ok: false},
		{name: "domain error", err: Conflict("add use case", ErrUseCaseExists, "X"), code: CodeAlreadyExists, ok: true},
		{name: "wrapped sentinel", err: fmt.Errorf("lookup: %w", ErrUseCaseNotFound), code: CodeNotFound, ok: true},
		{name: "validation sentinel", err: ErrSelfComparison, code: CodeInvalidArgument, ok: true},
		{name: "foreign", err: errors.New("disk full"), ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, ok := CodeFrom(tc.err)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, OpStatusSuccess, StatusFromError(nil))
	assert.Equal(t, OpStatusNotFound, StatusFromError(ErrToolNotFound))
	assert.Equal(t, OpStatusInvalid, StatusFromError(ErrInvalidScore))
	assert.Equal(t, OpStatusConflict, StatusFromError(ErrUseCaseExists))
	assert.Equal(t, OpStatusError, StatusFromError(errors.New("other")))
}
