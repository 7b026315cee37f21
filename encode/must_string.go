package encode

import (
	"bytes"

	"github.com/libconfig/go-libconfig/setting"
)

func MustString(s *setting.Setting) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(s, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
