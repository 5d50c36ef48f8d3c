package workspace

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/jorgealdojr/opentik/markup"
)

const lsName = "opentik"

type LSPServer struct {
	workspace *Workspace
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		workspace: New(nil),
		version:   version,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	doc := ls.workspace.Update(path, []byte(params.TextDocument.Text))
	ls.publishDiagnostics(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			doc := ls.workspace.Update(path, []byte(textChange.Text))
			ls.publishDiagnostics(ctx, params.TextDocument.URI, doc)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		doc := ls.workspace.Update(path, []byte(*params.Text))
		ls.publishDiagnostics(ctx, params.TextDocument.URI, doc)
	}
	return nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	symbols := ls.workspace.Symbols(path)
	if len(symbols) == 0 {
		return nil, nil
	}
	return toProtocolSymbols(symbols), nil
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, doc *Document) {
	diagnostics := []protocol.Diagnostic{}
	if doc.Err != nil {
		diagnostics = append(diagnostics, toDiagnostic(doc.Err))
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func toDiagnostic(err error) protocol.Diagnostic {
	var line, col protocol.UInteger
	var perr *markup.ParseError
	if errors.As(err, &perr) && perr.Line > 0 {
		line = protocol.UInteger(perr.Line - 1)
		col = protocol.UInteger(perr.Column - 1)
	}
	severity := protocol.DiagnosticSeverityError
	source := lsName
	pos := protocol.Position{Line: line, Character: col}
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}
}

func toProtocolSymbols(symbols []Symbol) []protocol.DocumentSymbol {
	result := make([]protocol.DocumentSymbol, 0, len(symbols))
	for _, sym := range symbols {
		var line, col protocol.UInteger
		if sym.Line > 0 {
			line = protocol.UInteger(sym.Line - 1)
			col = protocol.UInteger(sym.Column - 1)
		}
		pos := protocol.Position{Line: line, Character: col}
		rng := protocol.Range{Start: pos, End: pos}
		detail := sym.TypeName
		result = append(result, protocol.DocumentSymbol{
			Name:           sym.Name,
			Detail:         &detail,
			Kind:           protocol.SymbolKindObject,
			Range:          rng,
			SelectionRange: rng,
			Children:       toProtocolSymbols(sym.Children),
		})
	}
	return result
}

func uriToPath(uri protocol.DocumentUri) (string, error) {
	s := string(uri)
	if strings.HasPrefix(s, "file://") {
		parsed, err := url.Parse(s)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return s, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
