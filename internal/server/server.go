package server

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей
// Сейчас сущность одна — игровой раунд
type Server struct {
	GameServer
}

func NewServer(
	gameServer GameServer,
) Server {
	return Server{
		GameServer: gameServer,
	}
}
