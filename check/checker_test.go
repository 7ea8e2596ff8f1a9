package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, args ...any) { m.Called(msg, args) }
func (m *mockLogger) Info(msg string, args ...any)  { m.Called(msg, args) }
func (m *mockLogger) Warn(msg string, args ...any)  { m.Called(msg, args) }
func (m *mockLogger) Error(msg string, args ...any) { m.Called(msg, args) }

func TestCheckerCounts(t *testing.T) {
	c := NewChecker(nil)

	assert.True(t, c.Check("ok", true))
	assert.False(t, c.Check("bad", false))
	assert.True(t, c.Equal("same", 1, 1))
	assert.False(t, c.Equal("diff", 1, 2))
	c.Fail("forced")

	stat := c.Stat()
	assert.Equal(t, 2, stat.Passed)
	assert.Equal(t, 3, stat.Failed)
	assert.Equal(t, 5, stat.Total())
	assert.True(t, c.HasFailures())
}

func TestCheckerReportsFailuresThroughLogger(t *testing.T) {
	logger := &mockLogger{}
	logger.On("Debug", "check passed", mock.Anything).Once()
	logger.On("Error", "check failed", mock.Anything).Once()

	c := NewChecker(logger)
	c.Equal("tdata", uint64(0xAB), uint64(0xAB))
	c.Equal("tdata", uint64(0xAC), uint64(0xAB))

	logger.AssertExpectations(t)
	assert.Same(t, logger, c.Logger().(*mockLogger))
}

func TestCheckerNilLoggerStillCounts(t *testing.T) {
	c := NewChecker(nil)
	c.Fail("x")
	assert.Equal(t, 1, c.Stat().Failed)
	assert.False(t, c.Check("y", false))
	assert.Equal(t, 2, c.Stat().Failed)
}
