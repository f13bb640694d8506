package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/game"
	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/logger"
	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/session"
	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/shooter"
	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	var (
		addr    = flag.String("addr", ":8080", "http service address")
		mapFile = flag.String("map", "map.txt", "path to the board file, generated when missing")
		auto    = flag.Bool("auto", false, "play with the automated shooter instead of the console")
		seed    = flag.Int64("seed", 0, "board generator seed, 0 means time-seeded")
	)
	flag.Parse()
	logger.Init()

	board, err := loadBoard(*mapFile, *seed)
	if err != nil {
		logger.Log.Fatal(err)
	}
	board.PrintOwn()

	done := make(chan struct{})
	var once sync.Once
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(w, r, board, *auto)
		once.Do(func() { close(done) })
	})

	go func() {
		logger.Log.Infof("waiting for an opponent on %s", *addr)
		if err := http.ListenAndServe(*addr, nil); err != nil {
			logger.Log.Fatal("ListenAndServe: ", err)
		}
	}()
	<-done
}

func serveWs(w http.ResponseWriter, r *http.Request, board *game.Board, auto bool) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error(err)
		return
	}
	defer conn.Close()

	log := logger.Log.WithFields(logrus.Fields{
		"session": uuid.New().String(),
		"role":    "server",
	})
	log.Info("opponent connected")

	sess := session.New(
		session.NewWSConn(conn, session.DefaultReadTimeout),
		board,
		pickShooter(auto),
		false,
		log,
	)
	result, err := sess.Play()
	if err != nil {
		log.Error(err)
	}
	log.Infof("game over: %s", result)
	printFinalBoards(board, result)
}

func pickShooter(auto bool) session.Shooter {
	if auto {
		return shooter.NewRandom(nil)
	}
	return shooter.NewConsole(os.Stdin, os.Stdout)
}

func loadBoard(path string, seed int64) (*game.Board, error) {
	var rnd *rand.Rand
	if seed != 0 {
		rnd = rand.New(rand.NewSource(seed))
	}
	mapString, err := utils.LoadOrCreateMap(path, game.NewGenerator(rnd))
	if err != nil {
		return nil, err
	}
	return game.NewBoard(mapString)
}

func printFinalBoards(board *game.Board, result session.Result) {
	fmt.Println()
	board.PrintEnemy(result == session.Won)
	fmt.Println()
	board.PrintOwn()
}
