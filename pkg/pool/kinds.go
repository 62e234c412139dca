package pool

import "github.com/ajitpratap0/memkit/pkg/collections"

// The helpers below pick the plain or concurrent pool according to the
// registry's Options.Concurrent. A nil registry means Default().

func orDefault(r *Registry) *Registry {
	if r == nil {
		return Default()
	}
	return r
}

// GetArray returns an array of exactly size elements.
func GetArray[T any](r *Registry, size int) []T {
	r = orDefault(r)
	return Arrays[T](r, r.settings.opts.Concurrent).Get(size)
}

// ReturnArray hands array back to the bucket for its length.
func ReturnArray[T any](r *Registry, array []T) {
	r = orDefault(r)
	Arrays[T](r, r.settings.opts.Concurrent).Return(array)
}

// GetList returns an empty list.
func GetList[T any](r *Registry) *collections.List[T] {
	r = orDefault(r)
	return Lists[T](r, r.settings.opts.Concurrent).Get()
}

// ReturnList clears l and caches it.
func ReturnList[T any](r *Registry, l *collections.List[T]) {
	r = orDefault(r)
	Lists[T](r, r.settings.opts.Concurrent).Return(l)
}

// GetSet returns an empty set.
func GetSet[T comparable](r *Registry) collections.Set[T] {
	r = orDefault(r)
	return Sets[T](r, r.settings.opts.Concurrent).Get()
}

// ReturnSet clears s and caches it.
func ReturnSet[T comparable](r *Registry, s collections.Set[T]) {
	r = orDefault(r)
	Sets[T](r, r.settings.opts.Concurrent).Return(s)
}

// GetDictionary returns an empty map.
func GetDictionary[K comparable, V any](r *Registry) map[K]V {
	r = orDefault(r)
	return Dictionaries[K, V](r, r.settings.opts.Concurrent).Get()
}

// ReturnDictionary clears m and caches it.
func ReturnDictionary[K comparable, V any](r *Registry, m map[K]V) {
	r = orDefault(r)
	Dictionaries[K, V](r, r.settings.opts.Concurrent).Return(m)
}

// GetStack returns an empty stack.
func GetStack[T any](r *Registry) *collections.Stack[T] {
	r = orDefault(r)
	return Stacks[T](r, r.settings.opts.Concurrent).Get()
}

// ReturnStack clears s and caches it.
func ReturnStack[T any](r *Registry, s *collections.Stack[T]) {
	r = orDefault(r)
	Stacks[T](r, r.settings.opts.Concurrent).Return(s)
}

// GetQueue returns an empty queue.
func GetQueue[T any](r *Registry) *collections.Queue[T] {
	r = orDefault(r)
	return Queues[T](r, r.settings.opts.Concurrent).Get()
}

// ReturnQueue clears q and caches it.
func ReturnQueue[T any](r *Registry, q *collections.Queue[T]) {
	r = orDefault(r)
	Queues[T](r, r.settings.opts.Concurrent).Return(q)
}
