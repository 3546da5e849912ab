// SPDX-License-Identifier: MIT
// Package stream_test covers derived-stream operators.
package stream_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/katalvlaran/numflow/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMap doubles every item.
func TestMap(t *testing.T) {
	got, err := stream.Map(stream.FromSlice(seq(4)), func(v int) int { return v * 2 }).Collect(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 6}, got)
}

// TestMap_ChangesType maps into another element type.
func TestMap_ChangesType(t *testing.T) {
	got, err := stream.Map(stream.FromSlice([]int{7, 8}), strconv.Itoa).Collect(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "8"}, got)
}

// TestMapAsync_FilterAsync chains delayed async stages behind a serial source.
func TestMapAsync_FilterAsync(t *testing.T) {
	src := stream.FromSlice(seq(4)).Bottleneck(1)
	mapped := stream.MapAsync(src, func(_ context.Context, v int) (int, error) {
		time.Sleep(time.Duration(v) * time.Millisecond)
		return v, nil
	})
	filtered := mapped.FilterAsync(func(_ context.Context, v int) (bool, error) {
		time.Sleep(time.Duration(v) * time.Millisecond)
		return v < 2, nil
	})

	got, err := filtered.Collect(testCtx(t))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, got)
}

// TestMapAsync_Error errors the derived stream, not the source.
func TestMapAsync_Error(t *testing.T) {
	src := stream.FromSlice(seq(3))
	out := stream.MapAsync(src, func(_ context.Context, v int) (int, error) {
		if v == 1 {
			return 0, errBoom
		}
		return v, nil
	})

	_, err := out.Collect(testCtx(t))
	require.ErrorIs(t, err, errBoom)
	require.NoError(t, src.Wait(testCtx(t)))
}

// TestFilter keeps even numbers.
func TestFilter(t *testing.T) {
	got, err := stream.FromSlice(seq(7)).Filter(func(v int) bool { return v%2 == 0 }).Collect(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 6}, got)
}

// TestFilterZero and TestFilterNil drop empty values.
func TestFilterZero(t *testing.T) {
	got, err := stream.FilterZero(stream.FromSlice([]string{"a", "", "b"})).Collect(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestFilterNil(t *testing.T) {
	one, two := 1, 2
	got, err := stream.FilterNil(stream.FromSlice([]*int{&one, nil, &two})).Collect(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []*int{&one, &two}, got)
}

// TestPartition routes every item to exactly one side.
func TestPartition(t *testing.T) {
	src := stream.New[int]()
	pass, fail := src.Partition(func(v int) bool { return v < 3 })

	var passed, failed []int
	pass.Subscribe(func(v int) { passed = append(passed, v) })
	fail.Subscribe(func(v int) { failed = append(failed, v) })
	for _, v := range seq(6) {
		src.Push(v)
	}
	src.End()

	require.NoError(t, pass.Wait(testCtx(t)))
	require.NoError(t, fail.Wait(testCtx(t)))
	assert.Equal(t, []int{0, 1, 2}, passed)
	assert.Equal(t, []int{3, 4, 5}, failed)
}

// TestTake forwards the first n items and ends the source.
func TestTake(t *testing.T) {
	got, err := stream.FromSlice(seq(10)).Take(3).Collect(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)

	src := stream.New[int]()
	taken := src.Take(2)
	for i := 0; i < 5; i++ {
		src.Push(i)
	}
	got, err = taken.Collect(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)
	assert.True(t, src.Terminal())
}

// TestTake_Zero ends the source at once.
func TestTake_Zero(t *testing.T) {
	src := stream.New[int]()
	src.Push(1)
	_, err := src.Take(0).Last(testCtx(t))
	require.ErrorIs(t, err, stream.ErrNoData)
	assert.True(t, src.Terminal())
}

// TestGroup batches with a trailing partial batch.
func TestGroup(t *testing.T) {
	got, err := stream.Group(stream.FromSlice(seq(7)), 3).Collect(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6}}, got)

	got, err = stream.Group(stream.FromSlice(seq(4)), 2).Collect(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, got)
}

// TestGroup_Error flushes the partial batch before the error.
func TestGroup_Error(t *testing.T) {
	src := stream.Create(func(obs stream.Observer[int]) {
		obs.Push(0)
		obs.Push(1)
		obs.Push(2)
		obs.Error(errBoom)
	})
	grouped := stream.Group(src, 2)

	got, err := grouped.Collect(testCtx(t))
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, [][]int{{0, 1}, {2}}, got)
}

// TestConcat ends once both sources ended.
func TestConcat(t *testing.T) {
	a := stream.FromSlice([]int{1, 2})
	b := stream.New[int]()
	joint := a.Concat(b)
	b.Push(3)

	type result struct {
		items []int
		err   error
	}
	ctx := testCtx(t)
	res := make(chan result, 1)
	go func() {
		items, err := joint.Collect(ctx)
		res <- result{items, err}
	}()

	select {
	case <-a.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("first source never finished")
	}
	assert.False(t, joint.Terminal())

	b.End()
	r := <-res
	require.NoError(t, r.err)
	assert.ElementsMatch(t, []int{1, 2, 3}, r.items)
}

// TestConcat_Error errors the joint stream on the first error.
func TestConcat_Error(t *testing.T) {
	a := stream.New[int]()
	joint := a.Concat(stream.FromSlice([]int{1}))
	a.Error(errBoom)

	_, err := joint.Collect(testCtx(t))
	require.ErrorIs(t, err, errBoom)
}

// TestFlatMap_Items expands synchronously and keeps order.
func TestFlatMap_Items(t *testing.T) {
	out := stream.FlatMap(stream.FromSlice([]int{1, 2, 3}), func(v int) stream.Emitter[int] {
		return stream.Items[int]{v, v * 10}
	})

	got, err := out.Collect(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 10, 2, 20, 3, 30}, got)
}

// TestFlatMap_Deferred resolves one value per item off the loop.
func TestFlatMap_Deferred(t *testing.T) {
	out := stream.FlatMap(stream.FromSlice([]int{1, 2, 3}), func(v int) stream.Emitter[string] {
		return stream.Deferred[string](func(context.Context) (string, error) {
			time.Sleep(time.Duration(3-v) * time.Millisecond)
			return strconv.Itoa(v), nil
		})
	})

	got, err := out.Collect(testCtx(t))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2", "3"}, got)
}

// TestFlatMap_Stream drains inner streams and propagates their errors.
func TestFlatMap_Stream(t *testing.T) {
	out := stream.FlatMap(stream.FromSlice([]int{1, 2}), func(v int) stream.Emitter[int] {
		return stream.FromSlice([]int{v, v})
	})
	got, err := out.Collect(testCtx(t))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 1, 2, 2}, got)

	failing := stream.FlatMap(stream.FromSlice([]int{1}), func(int) stream.Emitter[int] {
		inner := stream.New[int]()
		inner.Error(errBoom)
		return inner
	})
	_, err = failing.Collect(testCtx(t))
	require.ErrorIs(t, err, errBoom)
}

// TestFlatMap_Nil emits nothing for a nil Emitter.
func TestFlatMap_Nil(t *testing.T) {
	out := stream.FlatMap(stream.FromSlice([]int{1, 2}), func(v int) stream.Emitter[int] {
		if v == 1 {
			return nil
		}
		return stream.Items[int]{v}
	})

	got, err := out.Collect(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got)
}

// TestDerivedName appends operator labels.
func TestDerivedName(t *testing.T) {
	s := stream.New[int](stream.WithName("src"))
	assert.Equal(t, "src/map/filter", stream.Map(s, func(v int) int { return v }).Filter(func(int) bool { return true }).Name())
}
