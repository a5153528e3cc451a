package sender

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/prilive-com/tgsend/tg"
)

// FilePart represents a file to be uploaded via multipart.
type FilePart struct {
	FieldName string    // e.g., "photo", "document", "thumbnail"
	FileName  string    // e.g., "photo.jpg"
	Reader    io.Reader // File content
}

// MultipartRequest is a request flattened into string parameters and file parts.
type MultipartRequest struct {
	Files  []FilePart
	Params map[string]string

	closers []io.Closer
}

// HasUploads returns true if the request contains file uploads.
func (r *MultipartRequest) HasUploads() bool {
	return len(r.Files) > 0
}

// Query encodes the parameters for a GET request.
func (r *MultipartRequest) Query() url.Values {
	q := make(url.Values, len(r.Params))
	for k, v := range r.Params {
		q.Set(k, v)
	}
	return q
}

// Close releases every file opened while building the request.
func (r *MultipartRequest) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	r.closers = nil
	return errors.Join(errs...)
}

// MultipartEncoder encodes requests as multipart/form-data.
type MultipartEncoder struct {
	w *multipart.Writer
}

// NewMultipartEncoder creates a new multipart encoder.
func NewMultipartEncoder(w io.Writer) *MultipartEncoder {
	return &MultipartEncoder{
		w: multipart.NewWriter(w),
	}
}

// ContentType returns the Content-Type header value including boundary.
func (e *MultipartEncoder) ContentType() string {
	return e.w.FormDataContentType()
}

// Close writes the closing boundary.
func (e *MultipartEncoder) Close() error {
	return e.w.Close()
}

// Encode writes parameters in name order, then the file parts.
func (e *MultipartEncoder) Encode(req *MultipartRequest) error {
	names := make([]string, 0, len(req.Params))
	for name := range req.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := e.w.WriteField(name, req.Params[name]); err != nil {
			return fmt.Errorf("param %s: %w", name, err)
		}
	}

	for _, file := range req.Files {
		if err := e.writeFile(file); err != nil {
			return fmt.Errorf("file %s: %w", file.FieldName, err)
		}
	}
	return nil
}

func (e *MultipartEncoder) writeFile(file FilePart) error {
	part, err := e.w.CreateFormFile(file.FieldName, file.FileName)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	// Stream directly - no buffering
	_, err = io.Copy(part, file.Reader)
	return err
}

// BuildMultipartRequest flattens a request struct using its json tags.
// Zero fields tagged omitempty are left out; embedded structs are inlined.
// Local files are opened here and must be released with Close, which
// BuildMultipartRequest does itself when it fails.
func BuildMultipartRequest(req any) (*MultipartRequest, error) {
	result := &MultipartRequest{
		Params: make(map[string]string),
	}

	rv := reflect.ValueOf(req)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("tgsend: request must be a struct, got %T", req)
	}

	if err := collectFields(result, rv); err != nil {
		_ = result.Close()
		return nil, err
	}
	return result, nil
}

func collectFields(result *MultipartRequest, rv reflect.Value) error {
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		if field.Anonymous && value.Kind() == reflect.Struct {
			if err := collectFields(result, value); err != nil {
				return err
			}
			continue
		}

		if !field.IsExported() {
			continue
		}

		name, omitEmpty := jsonTag(field)
		if name == "-" {
			continue
		}
		if omitEmpty && value.IsZero() {
			continue
		}

		if value.Type() == inputFileType {
			if err := handleInputFile(result, name, value.Interface().(InputFile)); err != nil {
				return err
			}
			continue
		}

		param, ok, err := formValue(value)
		if err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		if ok {
			result.Params[name] = param
		}
	}

	return nil
}

var (
	inputFileType = reflect.TypeOf(InputFile{})
	parseModeType = reflect.TypeOf(tg.ParseMode(""))
)

// formValue renders a scalar by kind so fields promoted from unexported
// embedded structs can be read. ok is false when nothing should be sent.
func formValue(v reflect.Value) (string, bool, error) {
	if v.Type() == parseModeType {
		wire := tg.ParseMode(v.String()).Wire()
		return wire, wire != "", nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true, nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true, nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true, nil
	case reflect.Ptr:
		if v.IsNil() {
			return "", false, nil
		}
		return formValue(v.Elem())
	}

	// Complex types (slices, maps, structs) -> JSON encode
	if !v.CanInterface() {
		return "", false, fmt.Errorf("unsupported field type %s", v.Type())
	}
	data, err := json.Marshal(v.Interface())
	if err != nil {
		return "", false, fmt.Errorf("JSON marshal: %w", err)
	}
	return string(data), true, nil
}

func handleInputFile(req *MultipartRequest, fieldName string, file InputFile) error {
	switch {
	case file.IsUpload():
		r, name, closer, err := file.open()
		if err != nil {
			return err
		}
		if closer != nil {
			req.closers = append(req.closers, closer)
		}
		req.Files = append(req.Files, FilePart{
			FieldName: fieldName,
			FileName:  name,
			Reader:    r,
		})

	case file.Value() != "":
		req.Params[fieldName] = file.Value()

	default:
		return tg.NewValidationError(fieldName, "file must have Path, Reader, FileID or URL set")
	}
	return nil
}

func jsonTag(field reflect.StructField) (name string, omitEmpty bool) {
	tag := field.Tag.Get("json")
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return parts[0], omitEmpty
}
