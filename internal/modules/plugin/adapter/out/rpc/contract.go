package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey       = "wird"
	serviceName        = "wird.plugin.v1.WirdPlugin"
	jsonCodecName      = "json"
	methodGetMetadata  = "/" + serviceName + "/GetMetadata"
	methodListEditions = "/" + serviceName + "/ListEditions"
	methodFetchSurah   = "/" + serviceName + "/FetchSurah"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "WIRD_PLUGIN",
	MagicCookieValue: "wird",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

type Edition struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

type ListEditionsResponse struct {
	Editions []Edition `json:"editions"`
}

type Verse struct {
	ID          int32  `json:"id"`
	Surah       int32  `json:"surah"`
	Ayah        int32  `json:"ayah"`
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
}

type FetchSurahRequest struct {
	Surah   int32  `json:"surah"`
	Edition string `json:"edition"`
}

type FetchSurahResponse struct {
	Verses []Verse `json:"verses"`
}

type WirdPluginServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	ListEditions(ctx context.Context, in *Empty) (*ListEditionsResponse, error)
	FetchSurah(ctx context.Context, in *FetchSurahRequest) (*FetchSurahResponse, error)
}

type WirdPluginClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	ListEditions(ctx context.Context) (*ListEditionsResponse, error)
	FetchSurah(ctx context.Context, in *FetchSurahRequest) (*FetchSurahResponse, error)
}

type wirdPluginClient struct {
	conn *grpc.ClientConn
}

func NewWirdPluginClient(conn *grpc.ClientConn) WirdPluginClient {
	return &wirdPluginClient{conn: conn}
}

func (c *wirdPluginClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wirdPluginClient) ListEditions(ctx context.Context) (*ListEditionsResponse, error) {
	out := &ListEditionsResponse{}
	if err := c.conn.Invoke(ctx, methodListEditions, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wirdPluginClient) FetchSurah(ctx context.Context, in *FetchSurahRequest) (*FetchSurahResponse, error) {
	out := &FetchSurahResponse{}
	if err := c.conn.Invoke(ctx, methodFetchSurah, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterWirdPluginServer(server grpc.ServiceRegistrar, impl WirdPluginServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*WirdPluginServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "ListEditions",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.ListEditions(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodListEditions}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.ListEditions(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "FetchSurah",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &FetchSurahRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.FetchSurah(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodFetchSurah}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*FetchSurahRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.FetchSurah(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/plugin-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl WirdPluginServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterWirdPluginServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewWirdPluginClient(conn), nil
}

func PluginMap(impl WirdPluginServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
