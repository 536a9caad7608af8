package builder

import "reswgen/internal/common"

// LibraryStatus tells whether the project owning a resource file is a
// class library.
type LibraryStatus int

const (
	// LibraryUnknown means the project metadata could not be read.
	LibraryUnknown LibraryStatus = iota
	NotLibrary
	Library
)

// String returns a human-readable status name.
func (s LibraryStatus) String() string {
	switch s {
	case LibraryUnknown:
		return "unknown"
	case NotLibrary:
		return "application"
	case Library:
		return "library"
	default:
		return common.UnknownStr
	}
}

// LibraryInfo is the result of a project metadata lookup.
type LibraryInfo struct {
	Status      LibraryStatus
	ProjectName string
}

// IsLibrary reports whether resources must be addressed as
// <ProjectName>/<ClassName>. Unknown status is treated as "not a library".
func (i LibraryInfo) IsLibrary() bool {
	return i.Status == Library && i.ProjectName != ""
}

// ProjectMetadata looks up the project that owns a resource file.
// Lookups are best-effort: the builder treats any error as LibraryUnknown.
type ProjectMetadata interface {
	Lookup(resourcePath string) (LibraryInfo, error)
}

// ProjectMetadataFunc adapts a function to the ProjectMetadata interface.
type ProjectMetadataFunc func(resourcePath string) (LibraryInfo, error)

// Lookup implements ProjectMetadata.
func (f ProjectMetadataFunc) Lookup(resourcePath string) (LibraryInfo, error) {
	return f(resourcePath)
}

// StaticProject describes every resource file as belonging to one project.
type StaticProject struct {
	Name    string
	Library bool
}

// Lookup implements ProjectMetadata.
func (p StaticProject) Lookup(string) (LibraryInfo, error) {
	if p.Library {
		return LibraryInfo{Status: Library, ProjectName: p.Name}, nil
	}

	return LibraryInfo{Status: NotLibrary, ProjectName: p.Name}, nil
}

// NoProject is used when no project metadata is available.
var NoProject ProjectMetadata = ProjectMetadataFunc(func(string) (LibraryInfo, error) {
	return LibraryInfo{Status: LibraryUnknown}, nil
})
