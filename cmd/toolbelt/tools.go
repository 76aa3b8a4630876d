package main

import (
	"fmt"

	"github.com/Cyclone1070/toolbelt/internal/config"
	"github.com/Cyclone1070/toolbelt/internal/tool/approval"
	"github.com/Cyclone1070/toolbelt/internal/tool/directory"
	"github.com/Cyclone1070/toolbelt/internal/tool/file"
	"github.com/Cyclone1070/toolbelt/internal/tool/jsr"
	"github.com/Cyclone1070/toolbelt/internal/tool/search"
	"github.com/Cyclone1070/toolbelt/internal/tool/service/executor"
	"github.com/Cyclone1070/toolbelt/internal/tool/service/fs"
	"github.com/Cyclone1070/toolbelt/internal/tool/service/git"
	"github.com/Cyclone1070/toolbelt/internal/tool/service/path"
	"github.com/Cyclone1070/toolbelt/internal/tool/shell"
	"github.com/Cyclone1070/toolbelt/internal/workflow/toolmanager"
	"go.uber.org/zap"
)

// newToolManager wires every tool against the real filesystem, shell and network.
func newToolManager(cfg *config.Config, osFS *fs.OSFileSystem, workdir string, gate approval.Approver, logger *zap.Logger) (*toolmanager.ToolManager, error) {
	root, err := path.CanonicaliseRoot(workdir)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize working directory: %w", err)
	}

	resolver := path.NewResolver(root)
	ignoreLoader := git.NewLoader(osFS)
	commandExecutor := executor.NewOSCommandExecutor()

	return toolmanager.NewToolManager(logger,
		file.NewReadFileTool(osFS, resolver),
		file.NewWriteFileTool(osFS, gate, cfg, resolver),
		directory.NewListDirectoryTool(osFS, resolver),
		directory.NewListDirectoryRecursiveTool(osFS, ignoreLoader, resolver),
		search.NewGrepTool(osFS, ignoreLoader, resolver),
		shell.NewShellTool(commandExecutor, gate, cfg, resolver),
		jsr.NewSearchTool(jsr.NewHTTPClient(cfg), cfg, logger),
	), nil
}
