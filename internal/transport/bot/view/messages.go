package view

const StartMessage = `🎲 <b>Игра «Найди свой ОКВЭД по номеру телефона»</b>

Пришлите российский мобильный номер в любом формате —
я найду код ОКВЭД с самым длинным общим окончанием.

Команды:
/status — состояние справочника
/catalog — листать справочник ОКВЭД`

const MatchTemplate = `🎯 <b>Ваш ОКВЭД</b>

📱 Номер: <code>%s</code>
📋 ОКВЭД: <b>%s</b> — %s
🔢 Совпало цифр с конца: <b>%d</b>`

const FallbackNote = `

🤷 Ни одной общей цифры не нашлось — код выпал «для галочки».`

const ErrorTemplate = `⚠️ <b>Раунд не сыгран</b>

Код: <code>%s</code>
%s`

const CatalogItemTemplate = "▫️ <code>%s</code> — %s\n"

const CatalogHeaderTemplate = "📚 <b>Справочник ОКВЭД</b> (Стр. %d/%d)\n\n"

const RefreshDoneTemplate = "🔄 Справочник обновлён: %d записей"

const RefreshError = "⚠️ Не удалось обновить справочник, попробуйте позже"

const CatalogError = "⚠️ Справочник сейчас недоступен"
