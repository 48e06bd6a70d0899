package models

// Variable is one declared trace of a binary waveform file.
type Variable struct {
	// Index is the declared position.
	Index int `json:"index"`
	// Name is the trace name, e.g. "V(out)".
	Name string `json:"name"`
	// Type is the declared quantity, e.g. "voltage".
	Type string `json:"type"`
}

// WaveformHeader is the text header of a binary waveform file.
type WaveformHeader struct {
	Title           string     `json:"title,omitempty"`
	Date            string     `json:"date,omitempty"`
	Plotname        string     `json:"plotname,omitempty"`
	Flags           []string   `json:"flags,omitempty"`
	NumVariables    int        `json:"no_variables"`
	NumPoints       int        `json:"no_points"`
	Offset          float64    `json:"offset"`
	Command         string     `json:"command,omitempty"`
	Backannotations []string   `json:"backannotations,omitempty"`
	Variables       []Variable `json:"variables"`
	// PayloadOffset is the byte offset of the first record.
	PayloadOffset int `json:"payload_offset"`
	// Encoding names the text encoding the header was decoded with.
	Encoding string `json:"encoding"`
}

// HasFlag reports whether flag was declared.
func (h *WaveformHeader) HasFlag(flag string) bool {
	for _, f := range h.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
