package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "github.com/ech-workers/ech-client/proto"
)

var (
	jsonIn  = protojson.UnmarshalOptions{DiscardUnknown: true}
	jsonOut = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}
)

// router serves the HTTP API on top of the same handlers as gRPC.
type router struct {
	sup    *supervisorService
	cfg    *configService
	daemon *daemonService
	log    logrus.FieldLogger
}

// NewRouter builds the gin engine for the local HTTP API. metrics may be nil.
func NewRouter(svc *Services, metrics http.Handler, log logrus.FieldLogger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	if log == nil {
		log = logrus.StandardLogger()
	}
	r := &router{
		sup:    &supervisorService{Services: svc},
		cfg:    &configService{Services: svc},
		daemon: &daemonService{Services: svc},
		log:    log,
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), r.logRequests, cors)
	r.register(engine, metrics)
	return engine
}

func (r *router) register(engine *gin.Engine, metrics http.Handler) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})
	if metrics != nil {
		engine.GET("/metrics", gin.WrapH(metrics))
	}

	api := engine.Group("/api")
	{
		api.POST("/proxy/start", r.start)
		api.POST("/proxy/stop", r.stop)
		api.GET("/proxy/status", r.status)

		api.GET("/config", r.getConfig)
		api.PUT("/config", r.saveConfig)

		api.GET("/system-proxy", r.getSystemProxy)
		api.POST("/system-proxy", r.setSystemProxy)

		api.GET("/output", r.getOutput)
		api.DELETE("/output", r.clearOutput)

		api.GET("/state", r.lastState)
		api.GET("/daemon", r.daemonStatus)
	}

	servers := api.Group("/servers")
	{
		servers.GET("", r.listServers)
		servers.POST("", r.upsertServer)
		servers.GET("/current", r.currentServer)
		servers.PUT("/current", r.selectServer)
		servers.PUT(":id", r.upsertServer)
		servers.DELETE(":id", r.deleteServer)
	}
}

func (r *router) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	r.log.WithFields(logrus.Fields{
		"method":   c.Request.Method,
		"path":     c.Request.URL.Path,
		"status":   c.Writer.Status(),
		"duration": time.Since(start),
	}).Debug("http")
}

// cors lets the desktop front end call the API from its own origin.
func cors(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// bind decodes a JSON body into m. An empty body leaves m untouched unless
// required is set.
func bind(c *gin.Context, m proto.Message, required bool) bool {
	var body []byte
	var err error
	if c.Request.Body != nil {
		body, err = io.ReadAll(c.Request.Body)
	}
	if err == nil && len(bytes.TrimSpace(body)) == 0 {
		if !required {
			return true
		}
		err = errors.New("request body is empty")
	}
	if err == nil {
		err = jsonIn.Unmarshal(body, m)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func (r *router) fail(c *gin.Context, err error) {
	st := status.Convert(statusError(err))
	code := http.StatusInternalServerError
	switch st.Code() {
	case codes.InvalidArgument:
		code = http.StatusBadRequest
	case codes.NotFound:
		code = http.StatusNotFound
	case codes.FailedPrecondition:
		code = http.StatusConflict
	case codes.PermissionDenied:
		code = http.StatusForbidden
	case codes.Unimplemented:
		code = http.StatusNotImplemented
	}
	c.JSON(code, gin.H{"error": st.Message()})
}

func (r *router) reply(c *gin.Context, m proto.Message, err error) {
	if err != nil {
		r.fail(c, err)
		return
	}
	data, err := jsonOut.Marshal(m)
	if err != nil {
		r.fail(c, err)
		return
	}
	c.Data(http.StatusOK, binding.MIMEJSON, data)
}

func (r *router) start(c *gin.Context) {
	req := &pb.StartRequest{}
	if !bind(c, req, false) {
		return
	}
	resp, err := r.sup.Start(c.Request.Context(), req)
	r.reply(c, resp, err)
}

func (r *router) stop(c *gin.Context) {
	req := &pb.StopRequest{All: c.Query("all") == "true"}
	if !bind(c, req, false) {
		return
	}
	if _, err := r.sup.Stop(c.Request.Context(), req); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *router) status(c *gin.Context) {
	resp, err := r.sup.GetStatus(c.Request.Context(), nil)
	r.reply(c, resp, err)
}

func (r *router) getConfig(c *gin.Context) {
	resp, err := r.cfg.GetConfig(c.Request.Context(), nil)
	r.reply(c, resp, err)
}

func (r *router) saveConfig(c *gin.Context) {
	req := &pb.ProxyConfig{}
	if !bind(c, req, true) {
		return
	}
	resp, err := r.cfg.SaveConfig(c.Request.Context(), req)
	r.reply(c, resp, err)
}

func (r *router) getSystemProxy(c *gin.Context) {
	resp, err := r.sup.GetSystemProxy(c.Request.Context(), nil)
	r.reply(c, resp, err)
}

func (r *router) setSystemProxy(c *gin.Context) {
	req := &pb.SystemProxyRequest{}
	if !bind(c, req, true) {
		return
	}
	resp, err := r.sup.SetSystemProxy(c.Request.Context(), req)
	r.reply(c, resp, err)
}

func (r *router) getOutput(c *gin.Context) {
	req := &pb.OutputRequest{}
	if s := c.Query("since"); s != "" {
		since, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid since: " + s})
			return
		}
		req.Since = since
	}
	resp, err := r.sup.GetOutput(c.Request.Context(), req)
	r.reply(c, resp, err)
}

func (r *router) clearOutput(c *gin.Context) {
	_, _ = r.sup.ClearOutput(c.Request.Context(), nil)
	c.Status(http.StatusNoContent)
}

func (r *router) lastState(c *gin.Context) {
	resp, err := r.sup.GetLastState(c.Request.Context(), nil)
	r.reply(c, resp, err)
}

func (r *router) daemonStatus(c *gin.Context) {
	resp, err := r.daemon.GetStatus(c.Request.Context(), nil)
	r.reply(c, resp, err)
}

func (r *router) listServers(c *gin.Context) {
	resp, err := r.cfg.ListServers(c.Request.Context(), nil)
	r.reply(c, resp, err)
}

func (r *router) upsertServer(c *gin.Context) {
	req := &pb.Server{}
	if !bind(c, req, true) {
		return
	}
	if id := c.Param("id"); id != "" {
		req.Id = id
	}
	resp, err := r.cfg.UpsertServer(c.Request.Context(), req)
	r.reply(c, resp, err)
}

func (r *router) currentServer(c *gin.Context) {
	resp, err := r.cfg.GetCurrentServer(c.Request.Context(), nil)
	r.reply(c, resp, err)
}

func (r *router) selectServer(c *gin.Context) {
	req := &pb.ServerId{}
	if !bind(c, req, true) {
		return
	}
	resp, err := r.cfg.SetCurrentServer(c.Request.Context(), req)
	r.reply(c, resp, err)
}

func (r *router) deleteServer(c *gin.Context) {
	if _, err := r.cfg.DeleteServer(c.Request.Context(), &pb.ServerId{Id: c.Param("id")}); err != nil {
		r.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
