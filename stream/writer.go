package stream

import (
	"bufio"
	"encoding/json"
	"io"
)

// CollectionWriter writes values as the features of one FeatureCollection.
// Nothing is written until the first Write or Close.
type CollectionWriter struct {
	output  *bufio.Writer
	encoder *json.Encoder
	count   int
	opened  bool
}

func (w *CollectionWriter) open() error {
	if w.opened {
		return nil
	}
	w.opened = true
	_, err := w.output.WriteString(`{"type":"FeatureCollection","features":[` + "\n")
	return err
}

func (w *CollectionWriter) Write(v any) error {
	if err := w.open(); err != nil {
		return err
	}
	if w.count > 0 {
		if err := w.output.WriteByte(','); err != nil {
			return err
		}
	}
	w.count++

	return w.encoder.Encode(v)
}

func (w *CollectionWriter) Close() error {
	if err := w.open(); err != nil {
		return err
	}
	if _, err := w.output.WriteString("]}\n"); err != nil {
		return err
	}
	return w.output.Flush()
}

func NewCollectionWriter(output io.Writer) *CollectionWriter {
	buffered := bufio.NewWriter(output)
	encoder := json.NewEncoder(buffered)
	encoder.SetEscapeHTML(false)
	return &CollectionWriter{
		output:  buffered,
		encoder: encoder,
	}
}

// NDJSONWriter writes one value per line.
type NDJSONWriter struct {
	output  *bufio.Writer
	encoder *json.Encoder
}

func (w *NDJSONWriter) Write(v any) error {
	return w.encoder.Encode(v)
}

func (w *NDJSONWriter) Close() error {
	return w.output.Flush()
}

func NewNDJSONWriter(output io.Writer) *NDJSONWriter {
	buffered := bufio.NewWriter(output)
	encoder := json.NewEncoder(buffered)
	encoder.SetEscapeHTML(false)
	return &NDJSONWriter{
		output:  buffered,
		encoder: encoder,
	}
}
