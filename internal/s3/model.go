package s3

// Image is a campaign image attachment headed for object storage
type Image struct {
	// Key is the object key relative to the configured prefix,
	// typically <campaign-id>/<image-id>.<ext>
	Key string

	// ContentType is the sniffed MIME type of the payload
	ContentType string

	// Data is the raw image payload
	Data []byte
}
