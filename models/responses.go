package models

import "time"

// BuildsResponse is the body of GET /api/builds.
type BuildsResponse struct {
	Machine string        `json:"machine"`
	Builds  []CachedBuild `json:"builds"`
	// Length is the number of entries in Builds.
	Length int `json:"length"`
}

// FileLink is one resolved file of a build.
type FileLink struct {
	Name      string     `json:"name,omitempty"`
	Size      string     `json:"size,omitempty"`
	Digest    string     `json:"digest"`
	URL       string     `json:"url"`
	Encrypted bool       `json:"encrypted"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// NewFileLink joins a download location with the matching descriptor entry,
// if any.
func NewFileLink(info FileDownloadInfo, file *File) FileLink {
	link := FileLink{
		Digest:    info.Digest,
		URL:       info.URL,
		Encrypted: info.Encrypted(),
	}
	if exp, ok := info.Expiration(); ok {
		link.ExpiresAt = &exp
	}
	if file != nil {
		link.Name = file.FileName
		link.Size = file.Size
	}
	return link
}

// FilesResponse is the body of GET /api/builds/{id}/files.
type FilesResponse struct {
	UpdateID uint64     `json:"update_id"`
	Files    []FileLink `json:"files"`
	Length   int        `json:"length"`
}

// LanguagesResponse is the body of GET /api/builds/{id}/languages.
type LanguagesResponse struct {
	UpdateID  uint64   `json:"update_id"`
	Languages []string `json:"languages"`
}

// EditionsResponse is the body of GET /api/builds/{id}/editions.
type EditionsResponse struct {
	UpdateID uint64   `json:"update_id"`
	Language string   `json:"language"`
	Editions []string `json:"editions"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// BuildFile is one descriptor file entry of a build.
type BuildFile struct {
	Name         string `json:"name"`
	Digest       string `json:"digest"`
	Size         string `json:"size,omitempty"`
	PatchingType string `json:"patching_type,omitempty"`
}

// BuildResponse is the body of GET /api/builds/{id}.
type BuildResponse struct {
	UpdateID       uint64      `json:"update_id"`
	UpdateGUID     string      `json:"update_guid"`
	RevisionNumber string      `json:"revision_number"`
	Title          string      `json:"title,omitempty"`
	Description    string      `json:"description,omitempty"`
	ContentType    string      `json:"content_type,omitempty"`
	Created        *time.Time  `json:"created,omitempty"`
	Files          []BuildFile `json:"files"`
}

// NewBuildResponse projects an assembled record into its API form.
func NewBuildResponse(record *UpdateRecord) BuildResponse {
	resp := BuildResponse{UpdateID: record.ID, Files: []BuildFile{}}

	d := record.Xml
	if d == nil {
		return resp
	}
	resp.UpdateGUID = d.UpdateIdentity.UpdateID
	resp.RevisionNumber = d.UpdateIdentity.RevisionNumber
	if d.LocalizedProperties != nil {
		resp.Title = d.LocalizedProperties.Title
		resp.Description = d.LocalizedProperties.Description
	}
	if d.ExtendedProperties != nil {
		resp.ContentType = d.ExtendedProperties.ContentType
		if created := d.ExtendedProperties.Created(); !created.IsZero() {
			resp.Created = &created
		}
	}
	for _, f := range d.Files {
		resp.Files = append(resp.Files, BuildFile{
			Name:         f.FileName,
			Digest:       f.Digest,
			Size:         f.Size,
			PatchingType: f.PatchingType,
		})
	}
	return resp
}
