package riffscan

import "sort"

// FieldStore maps dotted field paths ("fmt.sample_rate", "data.samples",
// "unknown0.raw_payload") to decoded values. A store is produced by a single
// parse and owned solely by the caller; lookups are by key only.
type FieldStore map[string]Value

// Keys returns every stored field path in lexical order.
func (s FieldStore) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// FourCC returns the 4-byte tag stored under key, if present.
func (s FieldStore) FourCC(key string) ([4]byte, bool) {
	v, ok := s[key]
	if !ok {
		return [4]byte{}, false
	}

	return v.FourCC()
}

// U16 returns the unsigned 16-bit value stored under key, if present.
func (s FieldStore) U16(key string) (uint16, bool) {
	v, ok := s[key]
	if !ok {
		return 0, false
	}

	return v.U16()
}

// U32 returns the unsigned 32-bit value stored under key, if present.
func (s FieldStore) U32(key string) (uint32, bool) {
	v, ok := s[key]
	if !ok {
		return 0, false
	}

	return v.U32()
}

// Bytes returns a copy of the raw byte block stored under key, if present.
func (s FieldStore) Bytes(key string) ([]byte, bool) {
	v, ok := s[key]
	if !ok {
		return nil, false
	}

	return v.Bytes()
}

// Samples returns a copy of the 16-bit samples stored under key, if present.
func (s FieldStore) Samples(key string) ([]int16, bool) {
	v, ok := s[key]
	if !ok {
		return nil, false
	}

	return v.Samples()
}

// Text returns the text stored under key, if present.
func (s FieldStore) Text(key string) (string, bool) {
	v, ok := s[key]
	if !ok {
		return "", false
	}

	return v.Text()
}
