package prom

import (
	"gfx.cafe/open/gotoprom"
	"github.com/prometheus/client_golang/prometheus"
)

type MessageLabels struct {
	Message string `label:"message"`
}

var Frontend struct {
	Frames       func(MessageLabels) prometheus.Counter `name:"frames_encoded" help:"frames encoded into the send buffer"`
	Bytes        func(MessageLabels) prometheus.Counter `name:"frame_bytes" help:"frame bytes encoded, tag and length included"`
	EncodeErrors func(MessageLabels) prometheus.Counter `name:"encode_errors" help:"messages that failed to encode"`
}

func init() {
	gotoprom.MustInit(&Frontend, "pgfe_frontend", prometheus.Labels{})
}
