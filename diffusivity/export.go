package diffusivity

import (
	"bytes"
	"strconv"
)

// CSV format
func (s *Sweep) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("T_K")
	buf.WriteString(",D_m2_s")
	buf.WriteString("\n")

	for i := 0; i < len(s.TemperatureK); i++ {
		buf.WriteString(strconv.FormatFloat(s.TemperatureK[i], 'f', -1, 64))
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(s.D[i], 'e', -1, 64))
		buf.WriteString("\n")
	}
}
