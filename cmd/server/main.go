package main

import (
	"fmt"

	"terminal-terrace/conduit/config"
	"terminal-terrace/conduit/internal/database"
	"terminal-terrace/conduit/internal/route"
)

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 初始化数据库
	database.InitDatabase()

	// 3. 设置路由
	r := route.SetupRouter(database.GetDB())

	// 4. 启动服务
	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	r.Run(addr)
}
