package parser

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"git.lost.host/meutraa/beatstat/internal/game"
	"git.lost.host/meutraa/beatstat/internal/score"
)

type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*game.Replay, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to read replay %s", file)
	}
	replay, err := p.ParseBytes(data)
	if nil != err {
		return nil, errors.Wrapf(err, "replay %s", file)
	}
	return replay, nil
}

func (p *DefaultParser) ParseBytes(data []byte) (*game.Replay, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Wrap(score.ErrMalformed, "invalid json document")
	}
	doc := gjson.ParseBytes(data)

	replay := &game.Replay{Info: p.info(doc.Get("info"))}

	notes := doc.Get("notes").Array()
	replay.Notes = make([]game.NoteEvent, 0, len(notes))
	for i, n := range notes {
		note, err := p.note(n)
		if nil != err {
			return nil, errors.Wrapf(score.ErrMalformed, "notes.%d: %v", i, err)
		}
		replay.Notes = append(replay.Notes, note)
	}

	for _, w := range doc.Get("walls").Array() {
		replay.Walls = append(replay.Walls, game.WallEvent{
			WallID:    int(w.Get("wallID").Int()),
			Energy:    w.Get("energy").Float(),
			Time:      w.Get("time").Float(),
			SpawnTime: w.Get("spawnTime").Float(),
		})
	}

	for _, pause := range doc.Get("pauses").Array() {
		replay.Pauses = append(replay.Pauses, game.PauseEvent{
			Duration: pause.Get("duration").Int(),
			Time:     pause.Get("time").Float(),
		})
	}

	// Frames can be large, only the last one matters here.
	frames := doc.Get("frames")
	if n := frames.Get("#").Int(); n > 0 {
		replay.EndTime = frames.Get(fmt.Sprintf("%d.time", n-1)).Float()
	}

	return replay, nil
}

func (p *DefaultParser) info(v gjson.Result) game.ReplayInfo {
	return game.ReplayInfo{
		Version:      v.Get("version").String(),
		GameVersion:  v.Get("gameVersion").String(),
		Timestamp:    v.Get("timestamp").String(),
		PlayerID:     v.Get("playerID").String(),
		PlayerName:   v.Get("playerName").String(),
		Platform:     v.Get("platform").String(),
		TrackingSys:  v.Get("trackingSystem").String(),
		HMD:          v.Get("hmd").String(),
		Controller:   v.Get("controller").String(),
		Hash:         v.Get("hash").String(),
		SongName:     v.Get("songName").String(),
		Mapper:       v.Get("mapper").String(),
		Difficulty:   v.Get("difficulty").String(),
		Mode:         v.Get("mode").String(),
		Environment:  v.Get("environment").String(),
		Modifiers:    game.ParseModifiers(v.Get("modifiers").String()),
		JumpDistance: v.Get("jumpDistance").Float(),
		LeftHanded:   v.Get("leftHanded").Bool(),
		Height:       v.Get("height").Float(),
		StartTime:    v.Get("startTime").Float(),
		FailTime:     v.Get("failTime").Float(),
		Speed:        v.Get("speed").Float(),
		Score:        int(v.Get("score").Int()),
	}
}

func (p *DefaultParser) note(v gjson.Result) (game.NoteEvent, error) {
	for _, field := range []string{"noteID", "eventTime", "eventType"} {
		if !v.Get(field).Exists() {
			return game.NoteEvent{}, errors.Errorf("missing %s", field)
		}
	}
	t, err := game.ParseEventType(v.Get("eventType").String())
	if nil != err {
		return game.NoteEvent{}, err
	}

	var cut *game.CutInfo
	if c := v.Get("noteCutInfo"); c.IsObject() {
		cut = p.cut(c)
	}
	return game.NewNoteEvent(
		int(v.Get("noteID").Int()),
		t,
		v.Get("spawnTime").Float(),
		v.Get("eventTime").Float(),
		cut,
	)
}

func vector(v gjson.Result) game.Vector3 {
	return game.Vector3{X: v.Get("x").Float(), Y: v.Get("y").Float(), Z: v.Get("z").Float()}
}

func (p *DefaultParser) cut(v gjson.Result) *game.CutInfo {
	return &game.CutInfo{
		SpeedOK:             v.Get("speedOK").Bool(),
		DirectionOK:         v.Get("directionOK").Bool(),
		SaberTypeOK:         v.Get("saberTypeOK").Bool(),
		WasCutTooSoon:       v.Get("wasCutTooSoon").Bool(),
		SaberSpeed:          v.Get("saberSpeed").Float(),
		SaberType:           game.SaberType(v.Get("saberType").Int()),
		TimeDeviation:       v.Get("timeDeviation").Float(),
		CutDirDeviation:     v.Get("cutDirDeviation").Float(),
		CutPoint:            vector(v.Get("cutPoint")),
		CutNormal:           vector(v.Get("cutNormal")),
		CutDistanceToCenter: v.Get("cutDistanceToCenter").Float(),
		CutAngle:            v.Get("cutAngle").Float(),
		BeforeCutRating:     v.Get("beforeCutRating").Float(),
		AfterCutRating:      v.Get("afterCutRating").Float(),
	}
}
