package main

import (
	"context"
	"fmt"

	pluginrpc "wird/internal/modules/plugin/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.Metadata, error) {
	return &pluginrpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"translation"},
	}, nil
}

func (s *server) ListEditions(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.ListEditionsResponse, error) {
	return &pluginrpc.ListEditionsResponse{Editions: []pluginrpc.Edition{
		{ID: "en.reference", Name: "Reference Translation", Language: "en"},
	}}, nil
}

func (s *server) FetchSurah(_ context.Context, in *pluginrpc.FetchSurahRequest) (*pluginrpc.FetchSurahResponse, error) {
	if in.Edition != "en.reference" {
		return nil, fmt.Errorf("unknown edition: %s", in.Edition)
	}
	if in.Surah != 1 {
		return &pluginrpc.FetchSurahResponse{Verses: []pluginrpc.Verse{}}, nil
	}
	return &pluginrpc.FetchSurahResponse{Verses: []pluginrpc.Verse{
		{
			ID:          1,
			Surah:       1,
			Ayah:        1,
			Arabic:      "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ",
			Translation: "In the name of God, the Most Gracious, the Most Merciful.",
		},
	}}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: pluginrpc.HandshakeConfig,
		Plugins:         pluginrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
