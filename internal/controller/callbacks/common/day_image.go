package common

import (
	"bytes"
	"image/color"
	"strconv"
	"sync"
	"time"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontStyle определяет стиль шрифта
type FontStyle string

const (
	FontStyleDefault FontStyle = "" // Regular
	FontStyleBold    FontStyle = "bold"
)

// Константы размеров и отступов
const (
	dayImageHeight   = 900
	headerHeight     = 110
	leftLabelsWidth  = 80
	legendWidth      = 190
	columnWidth      = 240
	columnPaddingX   = 8
	minBlockHeight   = 8.0
	blockRadius      = 6.0
	shadowOffset     = 3.0
	hourPadding      = 1
	defaultStartHour = 8
	defaultEndHour   = 20
	maxLabelRunes    = 22
)

// Константы шрифтов
const (
	titleFontSize      = 26.0
	columnFontSize     = 20.0
	hourLabelFontSize  = 16.0
	blockTimeFontSize  = 15.0
	legendItemFontSize = 13.0
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	hourLabelColor   = color.RGBA{110, 115, 120, 200}
	hourLineColor    = color.NRGBA{150, 150, 150, 255}
	offHoursColor    = color.NRGBA{215, 215, 215, 255}
	evenColumnColor  = color.NRGBA{252, 252, 252, 255}
	oddColumnColor   = color.NRGBA{240, 242, 245, 255}
	currentTimeColor = color.NRGBA{255, 80, 80, 200}

	pendingColor   = color.RGBA{255, 214, 102, 230}
	confirmedColor = color.RGBA{133, 193, 85, 220}
	completedColor = color.RGBA{150, 180, 220, 220}
	cancelledColor = color.RGBA{190, 190, 190, 160}
	blockTextColor = color.RGBA{20, 24, 28, 230}
	shadowColor    = color.RGBA{0, 0, 0, 20}

	legendItemColor = color.RGBA{70, 74, 78, 220}
)

// StaffColumn сотрудник и его записи на отображаемый день
type StaffColumn struct {
	Staff        model.Staff
	Appointments []model.Appointment
}

// hourRange содержит диапазон часов для отображения
type hourRange struct {
	start int
	end   int
	total int
}

var (
	fontMu      sync.Mutex
	cachedFonts = make(map[FontStyle]*opentype.Font)
)

// loadFont загружает шрифт указанного стиля или использует basicfont как fallback
func loadFont(dc *gg.Context, size float64, style ...FontStyle) {
	fontStyle := FontStyleDefault
	if len(style) > 0 {
		fontStyle = style[0]
	}

	fontData := goregular.TTF
	if fontStyle == FontStyleBold {
		fontData = gobold.TTF
	}

	fontMu.Lock()
	cachedFont, ok := cachedFonts[fontStyle]
	if !ok {
		parsedFont, err := opentype.Parse(fontData)
		if err != nil {
			fontMu.Unlock()
			dc.SetFontFace(basicfont.Face7x13)
			return
		}
		cachedFonts[fontStyle] = parsedFont
		cachedFont = parsedFont
	}
	fontMu.Unlock()

	face, err := opentype.NewFace(cachedFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}
	dc.SetFontFace(face)
}

// GenerateDayImage рисует расписание дня: колонка на сотрудника, блоки записей по времени.
// now нужен для красной линии текущего времени, если отображается сегодняшний день.
func GenerateDayImage(date time.Time, columns []StaffColumn, services []model.Service, now time.Time) ([]byte, error) {
	durations := make(map[string]int, len(services))
	for _, s := range services {
		durations[s.ID] = s.Duration
	}

	weekday := int(date.Weekday())
	hours := calculateHourRange(columns, weekday, durations)

	columnCount := len(columns)
	if columnCount == 0 {
		columnCount = 1
	}
	width := leftLabelsWidth + columnCount*columnWidth + legendWidth

	dc := gg.NewContext(width, dayImageHeight)
	dc.SetColor(bgColor)
	dc.Clear()

	cellHeight := float64(dayImageHeight-headerHeight) / float64(hours.total)

	drawHeader(dc, date)
	drawHourLabels(dc, hours, cellHeight)
	for i, column := range columns {
		x := float64(leftLabelsWidth + i*columnWidth)
		drawColumn(dc, column, i, x, weekday, hours, cellHeight, durations)
	}
	if len(columns) == 0 {
		drawEmptyColumn(dc, hours, cellHeight)
	}
	if sameDay(date, now) {
		drawCurrentTimeLine(dc, now, hours, cellHeight, columnCount)
	}
	drawLegend(dc, float64(leftLabelsWidth+columnCount*columnWidth+12))

	return encodeImage(dc)
}

// calculateHourRange охватывает рабочие часы всех сотрудников и все записи дня
func calculateHourRange(columns []StaffColumn, weekday int, durations map[string]int) hourRange {
	minMinute, maxMinute := 24*60, 0
	extend := func(from, to model.Clock) {
		if int(from) < minMinute {
			minMinute = int(from)
		}
		if int(to) > maxMinute {
			maxMinute = int(to)
		}
	}

	for _, column := range columns {
		if wh, ok := column.Staff.HoursFor(weekday); ok {
			from, errFrom := model.ParseClock(wh.StartTime)
			to, errTo := model.ParseClock(wh.EndTime)
			if errFrom == nil && errTo == nil {
				extend(from, to)
			}
		}
		for _, a := range column.Appointments {
			start, err := model.ParseClock(a.Time)
			if err != nil {
				continue
			}
			extend(start, start.Add(durations[a.ServiceID]))
		}
	}

	if minMinute > maxMinute {
		minMinute, maxMinute = defaultStartHour*60, defaultEndHour*60
	}

	startHour := minMinute/60 - hourPadding
	endHour := (maxMinute+59)/60 + hourPadding
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 24 {
		endHour = 24
	}

	return hourRange{start: startHour, end: endHour, total: endHour - startHour}
}

// drawHeader рисует дату с днём недели
func drawHeader(dc *gg.Context, date time.Time) {
	title := formatting.FormatDate(date) + ", " + formatting.GetWeekdayName(int(date.Weekday()))

	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, 16, float64(headerHeight)/4, 0, 0.5)
}

// drawHourLabels рисует колонку с часами слева
func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	loadFont(dc, hourLabelFontSize)
	dc.SetColor(hourLabelColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		y := float64(headerHeight) + float64(hIdx)*cellHeight
		dc.DrawStringAnchored(formatHourLabel(hours.start+hIdx), float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawColumn рисует колонку сотрудника: фон, рабочее окно, линии часов и записи
func drawColumn(dc *gg.Context, column StaffColumn, index int, x float64, weekday int,
	hours hourRange, cellHeight float64, durations map[string]int) {

	y := float64(headerHeight)
	height := float64(dayImageHeight - headerHeight)

	// Вне рабочих часов колонка серая
	dc.SetColor(offHoursColor)
	dc.DrawRectangle(x, y, columnWidth, height)
	dc.Fill()

	if wh, ok := column.Staff.HoursFor(weekday); ok {
		from, errFrom := model.ParseClock(wh.StartTime)
		to, errTo := model.ParseClock(wh.EndTime)
		if errFrom == nil && errTo == nil {
			if index%2 == 0 {
				dc.SetColor(evenColumnColor)
			} else {
				dc.SetColor(oddColumnColor)
			}
			top := clockY(from, hours, cellHeight)
			dc.DrawRectangle(x, top, columnWidth, clockY(to, hours, cellHeight)-top)
			dc.Fill()
		}
	}

	loadFont(dc, columnFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(truncate(column.Staff.Name, maxLabelRunes), x+columnWidth/2, y-18, 0.5, 0)

	drawHourLines(dc, x, hours, cellHeight)

	for _, a := range column.Appointments {
		drawAppointment(dc, a, x, hours, cellHeight, durations[a.ServiceID])
	}
}

// drawEmptyColumn заглушка, когда сотрудников нет
func drawEmptyColumn(dc *gg.Context, hours hourRange, cellHeight float64) {
	x := float64(leftLabelsWidth)
	dc.SetColor(offHoursColor)
	dc.DrawRectangle(x, headerHeight, columnWidth, float64(dayImageHeight-headerHeight))
	dc.Fill()
	drawHourLines(dc, x, hours, cellHeight)

	loadFont(dc, columnFontSize)
	dc.SetColor(textColor)
	dc.DrawStringAnchored("Нет сотрудников", x+columnWidth/2, float64(headerHeight)-18, 0.5, 0)
}

// drawHourLines рисует горизонтальные линии часов
func drawHourLines(dc *gg.Context, x float64, hours hourRange, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		hy := float64(headerHeight) + float64(hIdx)*cellHeight
		dc.DrawLine(x, hy, x+columnWidth, hy)
		dc.Stroke()
	}
}

// drawAppointment рисует одну запись. Запись с нераспознанным временем пропускается.
func drawAppointment(dc *gg.Context, a model.Appointment, x float64, hours hourRange, cellHeight float64, duration int) {
	start, err := model.ParseClock(a.Time)
	if err != nil {
		return
	}

	blockY := clockY(start, hours, cellHeight)
	blockHeight := clockY(start.Add(duration), hours, cellHeight) - blockY
	if blockHeight < minBlockHeight {
		blockHeight = minBlockHeight
	}

	fillColor := statusColor(a.Status)
	blockWidth := float64(columnWidth - columnPaddingX*2)
	left := x + columnPaddingX

	// Тень
	dc.SetColor(shadowColor)
	dc.DrawRoundedRectangle(left+shadowOffset, blockY+2+shadowOffset, blockWidth, blockHeight-4, blockRadius)
	dc.Fill()

	// Основной блок
	dc.SetColor(fillColor)
	dc.DrawRoundedRectangle(left, blockY+2, blockWidth, blockHeight-4, blockRadius)
	dc.Fill()

	// Рамка
	dc.SetColor(darkenColor(fillColor, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(left, blockY+2, blockWidth, blockHeight-4, blockRadius)
	dc.Stroke()

	loadFont(dc, blockTimeFontSize, FontStyleBold)
	dc.SetColor(blockTextColor)
	txtX := left + 8
	txtY := blockY + 18
	dc.DrawStringAnchored(start.String()+"-"+start.Add(duration).String(), txtX, txtY, 0, 0)

	if blockHeight > 36 {
		loadFont(dc, blockTimeFontSize-2)
		dc.DrawStringAnchored(truncate(a.CustomerName, maxLabelRunes), txtX, txtY+17, 0, 0)
	}
}

// clockY переводит время суток в координату по вертикали
func clockY(c model.Clock, hours hourRange, cellHeight float64) float64 {
	return float64(headerHeight) + (float64(c)/60.0-float64(hours.start))*cellHeight
}

// statusColor возвращает цвет блока по статусу записи
func statusColor(status model.AppointmentStatus) color.RGBA {
	switch status {
	case model.AppointmentStatusPending:
		return pendingColor
	case model.AppointmentStatusConfirmed:
		return confirmedColor
	case model.AppointmentStatusCompleted:
		return completedColor
	default:
		return cancelledColor
	}
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// drawCurrentTimeLine рисует красную линию текущего времени
func drawCurrentTimeLine(dc *gg.Context, now time.Time, hours hourRange, cellHeight float64, columnCount int) {
	current := model.Clock(now.Hour()*60 + now.Minute())
	if int(current) < hours.start*60 || int(current) > hours.end*60 {
		return
	}

	y := clockY(current, hours, cellHeight)
	dc.SetColor(currentTimeColor)
	dc.SetLineWidth(2.0)
	dc.DrawLine(float64(leftLabelsWidth), y, float64(leftLabelsWidth+columnCount*columnWidth), y)
	dc.Stroke()
}

// drawLegend рисует легенду статусов справа
func drawLegend(dc *gg.Context, legendX float64) {
	legendItems := []struct {
		Status model.AppointmentStatus
		Clr    color.Color
	}{
		{model.AppointmentStatusPending, pendingColor},
		{model.AppointmentStatusConfirmed, confirmedColor},
		{model.AppointmentStatusCompleted, completedColor},
		{model.AppointmentStatusCancelled, cancelledColor},
	}

	boxW := 20.0
	boxH := 14.0
	liY := float64(headerHeight)

	for _, item := range legendItems {
		dc.SetColor(item.Clr)
		dc.DrawRoundedRectangle(legendX, liY, boxW, boxH, 3)
		dc.Fill()

		loadFont(dc, legendItemFontSize)
		dc.SetColor(legendItemColor)
		label := formatting.GetAppointmentStatusDisplay(item.Status).Text
		dc.DrawStringAnchored(label, legendX+boxW+8, liY+boxH/2+1, 0, 0.2)
		liY += boxH + 14
	}
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// truncate обрезает строку по символам, а не байтам
func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes-1]) + "…"
}

func formatHourLabel(h int) string {
	if h < 10 {
		return "0" + strconv.Itoa(h) + ":00"
	}
	return strconv.Itoa(h) + ":00"
}
