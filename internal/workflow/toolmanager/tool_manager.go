package toolmanager

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Cyclone1070/toolbelt/internal/tool"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// ToolManager owns the tool registry and is the single invocation boundary: every
// outcome, including unknown tools, bad arguments and panics, comes back as a tool.Result.
type ToolManager struct {
	mu       sync.RWMutex
	registry map[string]toolImpl
	logger   *zap.Logger
}

func NewToolManager(logger *zap.Logger, tools ...toolImpl) *ToolManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	tm := &ToolManager{
		registry: make(map[string]toolImpl),
		logger:   logger,
	}
	for _, t := range tools {
		tm.Register(t)
	}
	return tm
}

// Register adds a tool, replacing any tool with the same name.
func (m *ToolManager) Register(t toolImpl) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registry[t.Name()] = t
}

func (m *ToolManager) Declarations() []tool.Declaration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	decls := make([]tool.Declaration, 0, len(m.registry))
	for _, t := range m.registry {
		decls = append(decls, t.Declaration())
	}
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Name < decls[j].Name
	})
	return decls
}

// Invoke validates raw against the named tool's schema, decodes it into the tool's
// request type and runs the tool.
func (m *ToolManager) Invoke(ctx context.Context, name string, raw any) (res tool.Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = tool.Failure(fmt.Sprintf("tool %q crashed: %v", name, r))
			m.logger.Error("tool panicked", zap.String("tool", name), zap.Any("panic", r))
		}
		m.logger.Debug("tool invoked",
			zap.String("tool", name),
			zap.Duration("duration", time.Since(start)),
			zap.Bool("failed", res.Failed()),
		)
	}()

	m.mu.RLock()
	t, ok := m.registry[name]
	m.mu.RUnlock()
	if !ok {
		return tool.Failure(fmt.Sprintf("tool %q does not exist. Available tools: %s", name, strings.Join(m.names(), ", ")))
	}

	params := t.Declaration().Parameters
	validated, err := params.Validate(raw)
	if err != nil {
		return tool.Failure(err.Error())
	}
	if params.IsScalar() {
		validated = map[string]any{tool.ScalarField: validated}
	}

	req := t.Input()
	if err := decode(validated, req); err != nil {
		return tool.Failure(fmt.Sprintf("invalid arguments for tool %q: %v", name, err))
	}

	payload, err := t.Execute(ctx, req)
	if err != nil {
		return tool.Failure(err.Error())
	}
	return tool.Success(payload)
}

func (m *ToolManager) names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.registry))
	for name := range m.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func decode(input, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
