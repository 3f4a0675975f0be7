package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess_Predicates(t *testing.T) {
	t.Parallel()

	s := Success(7)
	assert.True(t, s.IsSuccess())
	assert.False(t, s.IsFailure())
	assert.Equal(t, 7, FromSuccess(s))
	assert.NoError(t, s.Err())
}

func TestFailure_Predicates(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	f := Failure[int](err)
	assert.True(t, f.IsFailure())
	assert.False(t, f.IsSuccess())
	assert.Same(t, err, FromFailure(f))
	assert.Zero(t, f.Value())
}

func TestFromSuccess_PanicsOnFailure(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrNotSuccess)
	}()

	FromSuccess(Failure[int](errors.New("x")))
	t.Fatalf("FromSuccess must panic on a failure")
}

func TestFromFailure_PanicsOnSuccess(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, ErrNotFailure.Error(), func() {
		FromFailure(Success("v"))
	})
}

func TestIsTry(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTry(Success(1)))
	assert.True(t, IsTry(Failure[string](errors.New("e"))))
	assert.False(t, IsTry(1))
	assert.False(t, IsTry(nil))
	assert.False(t, IsTry(&struct{}{}))

	s := Success(1)
	assert.False(t, IsTry(&s))
	var nilTry *Try[int]
	assert.False(t, IsTry(nilTry))
}

func TestFromTry(t *testing.T) {
	t.Parallel()

	err := errors.New("e")
	assert.Equal(t, 3, FromTry(Success(3)))
	assert.Equal(t, err, FromTry(Failure[int](err)))
	assert.Nil(t, FromTry("not a try"))
	assert.Nil(t, FromTry(nil))

	s := Success(3)
	assert.Nil(t, FromTry(&s))
	assert.NotPanics(t, func() {
		assert.Nil(t, FromTry((*Try[int])(nil)))
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	err := errors.New("e")
	assert.True(t, Success(1).Equal(Success(1)))
	assert.False(t, Success(1).Equal(Success(2)))
	assert.True(t, Failure[int](err).Equal(Failure[int](err)))
	assert.True(t, Failure[int](errors.New("x")).Equal(Failure[int](errors.New("x"))))
	assert.False(t, Failure[int](errors.New("x")).Equal(Failure[int](errors.New("y"))))
	assert.False(t, Success(0).Equal(Failure[int](err)))
	assert.False(t, Failure[int](nil).Equal(Success(0)))
}

func TestIdentity_Unique(t *testing.T) {
	t.Parallel()

	a, b := Success(1), Success(1)
	assert.NotEqual(t, a.Id(), b.Id())
	assert.False(t, a.CreatedAt().IsZero())
	assert.Equal(t, "UTC", a.CreatedAt().Location().String())
}

func TestGetAndGetOrElse(t *testing.T) {
	t.Parallel()

	v, err := Success("ok").Get()
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	boom := errors.New("boom")
	v, err = Failure[string](boom).Get()
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, v)

	assert.Equal(t, 5, Success(5).GetOrElse(9))
	assert.Equal(t, 9, Failure[int](boom).GetOrElse(9))
}

func TestFold(t *testing.T) {
	t.Parallel()

	onSuccess := func(v int) string { return "ok" }
	onFailure := func(err error) string { return err.Error() }

	assert.Equal(t, "ok", Fold(Success(1), onSuccess, onFailure))
	assert.Equal(t, "bad", Fold(Failure[int](errors.New("bad")), onSuccess, onFailure))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(4)", Success(4).String())
	assert.Equal(t, "Failure(nope)", Failure[int](errors.New("nope")).String())
}

func TestErrors_SplitsCombined(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Errors(nil))

	single := errors.New("one")
	assert.Equal(t, []error{single}, Errors(single))
}
