package segment

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSegmentProperties checks the window arithmetic against plain slicing.
func TestSegmentProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("construction succeeds exactly for in-range windows", prop.ForAll(
		func(data []int, offset, count int) bool {
			s, err := FromSliceRange(data, offset, count)
			valid := offset >= 0 && offset <= len(data) && count >= 0 && count <= len(data)-offset
			if !valid {
				return err != nil && !s.HasSource()
			}
			return err == nil && slices.Equal(s.ToArray(), data[offset:offset+count])
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(-3, 40),
		gen.IntRange(-3, 40),
	))

	properties.Property("slicing composes with offsets", prop.ForAll(
		func(data []int, a, b int) bool {
			s := FromSlice(data)
			first, err := s.Slice(a)
			if a > len(data) {
				return err != nil
			}
			second, err := first.Slice(b)
			if b > first.Count() {
				return err != nil
			}
			if err != nil {
				return false
			}
			direct, err := s.Slice(a + b)
			return err == nil && second.Equal(direct) && second.Hash() == direct.Hash()
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 30),
		gen.IntRange(0, 30),
	))

	properties.Property("take and skip partition the segment", prop.ForAll(
		func(data []int, n int) bool {
			s := FromSlice(data)
			if n > s.Count() {
				_, takeErr := s.Take(n)
				_, skipErr := s.Skip(n)
				return takeErr != nil && skipErr != nil
			}
			head, err1 := s.Take(n)
			tail, err2 := s.Skip(n)
			if err1 != nil || err2 != nil {
				return false
			}
			joined := append(head.ToArray(), tail.ToArray()...)
			return slices.Equal(joined, data) && head.Count()+tail.Count() == s.Count()
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 30),
	))

	properties.Property("TakeLast is Skip of the complement", prop.ForAll(
		func(data []int, n int) bool {
			s := FromSlice(data)
			last, err := s.TakeLast(n)
			if n > s.Count() {
				return err != nil
			}
			skipped, err2 := s.Skip(s.Count() - n)
			return err == nil && err2 == nil && last.Equal(skipped)
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 30),
	))

	properties.Property("Array and Segment agree", prop.ForAll(
		func(data []int, offset int) bool {
			if offset > len(data) {
				offset = len(data)
			}
			a, err1 := ArrayRange(data, offset, len(data)-offset)
			s, err2 := FromSliceRange(data, offset, len(data)-offset)
			return err1 == nil && err2 == nil &&
				slices.Equal(a.ToArray(), s.ToArray()) &&
				a.Segment().Equal(s) && a.Hash() == s.Hash()
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 30),
	))

	properties.TestingRun(t)
}
