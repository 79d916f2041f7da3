package schema

// DefaultBackupSuffix is the suffix used for backups when none is given.
const DefaultBackupSuffix = "~"

// LinkOptions controls a single invocation of the linking pipeline. It is
// constructed once per invocation and never modified while linking.
type LinkOptions struct {
	// Symbolic creates symbolic links instead of hard links.
	Symbolic bool

	// Relative stores symbolic link targets relative to the link's own
	// directory instead of as given. It has no effect without Symbolic.
	Relative bool

	// Force removes a pre-existing destination before linking.
	Force bool

	// Backup renames a pre-existing destination out of the way before
	// linking. It takes precedence over Force.
	Backup bool

	// BackupSuffix is appended to a displaced destination's name.
	BackupSuffix string

	// SymlinkFilesOnly skips directory entries in symbolic mode, so that
	// the tree is descended and only its files are linked.
	SymlinkFilesOnly bool
}

// DefaultLinkOptions returns the [LinkOptions] of a plain hard-linking run.
func DefaultLinkOptions() LinkOptions {
	return LinkOptions{
		BackupSuffix: DefaultBackupSuffix,
	}
}

// Normalized returns a copy of the options with an empty backup suffix
// replaced by [DefaultBackupSuffix].
func (o LinkOptions) Normalized() LinkOptions {
	if o.BackupSuffix == "" {
		o.BackupSuffix = DefaultBackupSuffix
	}

	return o
}
