package main

import (
	"fmt"
	"io"

	"github.com/indigo-web/reqline/http"
	"github.com/indigo-web/reqline/http/method"
	"github.com/indigo-web/reqline/http/percent"
	"github.com/indigo-web/reqline/http/proto"
	json "github.com/json-iterator/go"
)

type report struct {
	Line         int           `json:"line"`
	Method       method.Method `json:"method"`
	Scheme       string        `json:"scheme,omitempty"`
	Username     string        `json:"username,omitempty"`
	Password     string        `json:"password,omitempty"`
	Host         string        `json:"host,omitempty"`
	Port         uint16        `json:"port"`
	Path         string        `json:"path"`
	Query        string        `json:"query,omitempty"`
	Fragment     string        `json:"fragment,omitempty"`
	Version      proto.Version `json:"version"`
	DecodedPath  string        `json:"decoded_path,omitempty"`
	DecodedQuery string        `json:"decoded_query,omitempty"`
}

func newReport(line int, request http.Request, decode bool) (r report, err error) {
	r = report{
		Line:     line,
		Method:   request.Method,
		Scheme:   request.URI.Scheme,
		Username: request.URI.Auth.Username,
		Password: request.URI.Auth.Password,
		Host:     request.URI.Host,
		Port:     request.URI.Port,
		Path:     request.URI.Path,
		Query:    request.URI.Query,
		Fragment: request.URI.Fragment,
		Version:  request.Version,
	}

	if !decode {
		return r, nil
	}

	if r.DecodedPath, err = percent.ViewOfString(r.Path).Decode(); err != nil {
		return r, err
	}

	r.DecodedQuery, err = percent.ViewOfString(r.Query).Decode()

	return r, err
}

// renderer writes reports. The views inside a report are only valid until the
// next line is read, so a report must be written out right away.
type renderer interface {
	Render(r report) error
}

type textRenderer struct {
	w io.Writer
}

func (t textRenderer) Render(r report) error {
	_, err := fmt.Fprintf(
		t.w, "%d: %s %s scheme=%q user=%q host=%q port=%d path=%q query=%q fragment=%q\n",
		r.Line, r.Method, r.Version, r.Scheme, r.Username, r.Host, r.Port, r.Path, r.Query, r.Fragment,
	)
	if err != nil || (len(r.DecodedPath) == 0 && len(r.DecodedQuery) == 0) {
		return err
	}

	_, err = fmt.Fprintf(t.w, "%d: decoded path=%q query=%q\n", r.Line, r.DecodedPath, r.DecodedQuery)

	return err
}

type jsonRenderer struct {
	w io.Writer
}

func (j jsonRenderer) Render(r report) error {
	stream := json.ConfigDefault.BorrowStream(j.w)
	defer json.ConfigDefault.ReturnStream(stream)

	stream.WriteVal(r)
	stream.WriteRaw("\n")

	if stream.Error != nil {
		return stream.Error
	}

	return stream.Flush()
}

func newRenderer(format Format, w io.Writer) renderer {
	if format == JSON {
		return jsonRenderer{w: w}
	}

	return textRenderer{w: w}
}
