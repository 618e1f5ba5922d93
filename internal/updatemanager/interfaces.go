package updatemanager

//go:generate go run github.com/golang/mock/mockgen -package updatemanager -destination=interfaces_mock.go -source=./interfaces.go -build_flags=-mod=mod

import (
	"context"

	"github.com/eopatcher/eopatcher/internal/appversion"
	"github.com/eopatcher/eopatcher/internal/updatemanager/fetcher"
	"github.com/eopatcher/eopatcher/internal/updatemanager/status"
)

// LocalVersion reads and records the installed version
type LocalVersion interface {
	Get() (appversion.Version, error)
	Store(ctx context.Context, v appversion.Version) error
}

// RemoteVersion reports the version published by the update server
type RemoteVersion interface {
	Get(ctx context.Context) fetcher.Result
}

// ArchiveSource places the patch archive for a version at dstFile
type ArchiveSource interface {
	Fetch(ctx context.Context, target appversion.Version, dstFile string) error
}

// Deployer applies an archive to the installation directory
type Deployer interface {
	Deploy(ctx context.Context, target appversion.Version, archivePath string, sink status.Sink) error
}
