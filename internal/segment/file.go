package segment

import (
	"github.com/zclconf/go-cty/cty"
)

// TransferMethod describes how a file entered the workflow.
type TransferMethod string

const (
	TransferRemoteURL TransferMethod = "remote_url"
	TransferLocalFile TransferMethod = "local_file"
	TransferToolFile  TransferMethod = "tool_file"
)

// File describes a single file held in an array[file] segment. All fields
// except Size and TransferMethod may be empty.
type File struct {
	Filename       string
	Extension      string
	MimeType       string
	Type           string // file category, e.g. "image" or "document"
	TransferMethod TransferMethod
	RemoteURL      string
	Size           int64
}

// ToMap renders the file as a plain attribute map for result capture.
func (f *File) ToMap() map[string]any {
	return map[string]any{
		"name":            f.Filename,
		"type":            f.Type,
		"extension":       f.Extension,
		"mime_type":       f.MimeType,
		"transfer_method": string(f.TransferMethod),
		"url":             f.RemoteURL,
		"size":            f.Size,
	}
}

// fileCtyType is the object type every file converts to, so that file arrays
// form homogeneous cty lists.
var fileCtyType = cty.Object(map[string]cty.Type{
	"name":            cty.String,
	"type":            cty.String,
	"extension":       cty.String,
	"mime_type":       cty.String,
	"transfer_method": cty.String,
	"url":             cty.String,
	"size":            cty.Number,
})

// ToCty converts the file into a cty object value.
func (f *File) ToCty() cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"name":            cty.StringVal(f.Filename),
		"type":            cty.StringVal(f.Type),
		"extension":       cty.StringVal(f.Extension),
		"mime_type":       cty.StringVal(f.MimeType),
		"transfer_method": cty.StringVal(string(f.TransferMethod)),
		"url":             cty.StringVal(f.RemoteURL),
		"size":            cty.NumberIntVal(f.Size),
	})
}
