package spreadsheet

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveScope is the minimal scope needed to list a file's revisions.
const DriveScope = drive.DriveMetadataReadonlyScope

type Revision struct {
	ID       string
	Modified time.Time
}

// Revisions looks up spreadsheet revision history through the Drive API.
type Revisions struct {
	auth    Authorizer
	user    string
	options []option.ClientOption
}

func NewRevisions(auth Authorizer, user string, options ...option.ClientOption) *Revisions {
	return &Revisions{
		auth:    auth,
		user:    user,
		options: options,
	}
}

// Latest returns the most recently modified revision of the file.
func (r *Revisions) Latest(ctx context.Context, fileID string) (*Revision, error) {
	client, err := r.auth.Client(ctx, r.user)
	if err != nil {
		return nil, unauthorised(err)
	}

	options := append([]option.ClientOption{option.WithHTTPClient(client)}, r.options...)
	gdrive, err := drive.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	page := ""
	latest := Revision{}

	for {
		call := gdrive.Revisions.List(fileID).Fields("nextPageToken", "revisions(id,modifiedTime)").Context(ctx)
		if page != "" {
			call.PageToken(page)
		}

		revisions, err := call.Do()
		if err != nil {
			return nil, classify(err)
		}

		for _, revision := range revisions.Revisions {
			modified, err := time.Parse(time.RFC3339Nano, revision.ModifiedTime)
			if err != nil {
				return nil, fmt.Errorf("invalid modified time '%v' for revision %v (%w)", revision.ModifiedTime, revision.Id, err)
			}

			if latest.Modified.Before(modified) {
				latest.ID = revision.Id
				latest.Modified = modified
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.Modified.IsZero() {
		return nil, fmt.Errorf("%w: unable to identify latest revision for file ID %s", ErrNotFound, fileID)
	}

	return &latest, nil
}
