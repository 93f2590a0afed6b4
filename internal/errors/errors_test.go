package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-duel/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "weapon not found",
			expected: "NOT_FOUND: weapon not found",
		},
		{
			name:     "missing capability error",
			code:     errors.CodeMissingCapability,
			message:  "attacker has no weapon",
			expected: "MISSING_CAPABILITY: attacker has no weapon",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.MissingCapability("no magic equipped").
		WithMeta("combatant_id", "7").
		WithMeta("slot", "magic")

	s.Equal("7", err.Meta["combatant_id"])
	s.Equal("magic", err.Meta["slot"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("roller exhausted")
	wrapped := errors.Wrap(baseErr, "failed to roll hit")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to roll hit", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	original := errors.InvalidConfiguration("attack must not be negative").WithMeta("field", "attack")
	wrapped := errors.Wrapf(original, "failed to build %s", "goblin")

	s.Equal(errors.CodeInvalidConfiguration, wrapped.Code)
	s.Equal("failed to build goblin", wrapped.Message)
	s.Equal("attack", wrapped.Meta["field"])
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	original := errors.InvalidArgument("validation failed").WithMeta("validation_errors", "x")
	wrapped := errors.WrapWithCode(original, errors.CodeInvalidConfiguration, "invalid character config")

	s.Equal(errors.CodeInvalidConfiguration, wrapped.Code)
	s.Equal("x", wrapped.Meta["validation_errors"])
	s.True(errors.IsInvalidConfiguration(wrapped))
	s.False(errors.IsInvalidArgument(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.MissingCapability("attacker has no weapon")
	err2 := errors.MissingCapability("defender has no magic")
	err3 := errors.InvalidConfiguration("negative defense")

	s.True(errors.Is(err1, err2))
	s.False(errors.Is(err1, err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	s.True(errors.IsNotFound(errors.NotFoundf("weapon %q", "axe")))
	s.True(errors.IsInvalidArgument(errors.InvalidArgumentf("bad %s", "input")))
	s.True(errors.IsFailedPrecondition(errors.FailedPrecondition("not ready")))
	s.True(errors.IsInternal(errors.Internalf("boom %d", 1)))
	s.True(errors.IsInvalidConfiguration(errors.InvalidConfigurationf("negative %s", "hp")))
	s.True(errors.IsMissingCapability(errors.MissingCapabilityf("no %s", "weapon")))
	s.True(errors.IsInternal(fmt.Errorf("plain error")))
}

func (s *ErrorsTestSuite) TestGetters() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Empty(errors.GetMessage(nil))
	s.Nil(errors.GetMeta(fmt.Errorf("plain")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))

	err := errors.NotFound("weapon not found").WithMeta("name", "axe")
	s.Equal("weapon not found", errors.GetMessage(err))
	s.Equal("axe", errors.GetMeta(err)["name"])
}

func (s *ErrorsTestSuite) TestToStatus() {
	s.Run("nil is OK", func() {
		s.Equal(codes.OK, errors.ToStatus(nil).Code())
	})

	s.Run("coded error keeps its code and metadata", func() {
		err := errors.MissingCapability("defender has no weapon").
			WithMeta("slot", "weapon").
			WithMeta("combatant_id", "2")

		st := errors.ToStatus(err)
		s.Equal(codes.FailedPrecondition, st.Code())
		s.Equal("MISSING_CAPABILITY: defender has no weapon [combatant_id=2 slot=weapon]", st.Message())
	})

	s.Run("code survives fmt wrapping", func() {
		err := fmt.Errorf("attacker: %w", errors.NotFound("weapon not found"))

		st := errors.ToStatus(err)
		s.Equal(codes.NotFound, st.Code())
		s.Equal("attacker: NOT_FOUND: weapon not found", st.Message())
	})

	s.Run("plain error is unknown", func() {
		st := errors.ToStatus(fmt.Errorf("unknown flag: --bogus"))
		s.Equal(codes.Unknown, st.Code())
		s.Equal("unknown flag: --bogus", st.Message())
	})

	s.Run("status error passes through", func() {
		st := errors.ToStatus(status.Error(codes.Unavailable, "down"))
		s.Equal(codes.Unavailable, st.Code())
		s.Equal("down", st.Message())
	})
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeInvalidConfiguration, codes.InvalidArgument},
		{errors.CodeMissingCapability, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
