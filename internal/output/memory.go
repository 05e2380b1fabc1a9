package output

// Memory is an in-memory Target for tests. It records how many writes were
// performed and how many were skipped as unchanged.
type Memory struct {
	Files  map[string][]byte
	Writes int
	Skips  int
}

func NewMemory() *Memory {
	return &Memory{Files: make(map[string][]byte)}
}

func (m *Memory) Write(name string, content []byte) (bool, error) {
	if existing, found := m.Files[name]; found && string(existing) == string(content) {
		m.Skips++
		return false, nil
	}
	m.Files[name] = append([]byte(nil), content...)
	m.Writes++
	return true, nil
}

// Compile-time check that Memory implements the Target interface
var _ Target = (*Memory)(nil)
