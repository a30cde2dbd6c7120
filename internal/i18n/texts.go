package i18n

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Spanish texts
	l.texts[LangSpanish] = map[string]string{
		KeyBannerTitle: "DESCARGADOR UNIVERSAL DE VIDEOS",
		KeyAllViaYtDlp: "Todas las plataformas usan yt-dlp (máxima estabilidad)",
		KeyUpdateHint:  "Para actualizar: pip install --upgrade yt-dlp",
		KeyFarewell:    "¡Gracias por usar el descargador universal!",
		KeyVersion:     "media-downloader versión %s",

		KeyYtDlpInstalled:     "yt-dlp: Instalado",
		KeyYtDlpVersion:       "Versión: %s",
		KeyYtDlpMissing:       "yt-dlp: No instalado",
		KeyYtDlpInstallHint:   "Instálalo con \"pip install yt-dlp\" o ejecuta con --install",
		KeyYtDlpInstalling:    "Descargando yt-dlp...",
		KeyFFmpegInstalled:    "ffmpeg: Instalado",
		KeyFFmpegMissing:      "ffmpeg: No encontrado",
		KeyFFmpegRequired:     "IMPORTANTE: ffmpeg es requerido para descargar audio (MP3/WAV)",
		KeyFFmpegDownloadFrom: "Descarga desde: https://ffmpeg.org/",
		KeyFFmpegVideoOnly:    "Sin ffmpeg solo podrás descargar videos completos",

		KeyStepURL:          "1. URL del video:",
		KeyPromptURL:        "Ingresa la URL (YouTube, Facebook o Instagram):",
		KeyURLEmpty:         "La URL no puede estar vacía.",
		KeyURLUnknown:       "URL no reconocida. Solo se admiten URLs de YouTube, Facebook o Instagram.",
		KeyPlatformDetected: "Plataforma detectada: %s",

		KeyFetchingInfo:     "Obteniendo información del contenido...",
		KeyInfoError:        "Error al obtener información de %s: %v",
		KeyInfoPlatform:     "Plataforma: %s",
		KeyInfoTitle:        "Título: %s",
		KeyInfoAuthor:       "Autor: %s",
		KeyInfoDuration:     "Duración: %s",
		KeyInfoViews:        "Vistas: %s",
		KeyInfoLikes:        "Likes: %s",
		KeyInfoDescription:  "Descripción: %s",
		KeyNoDescription:    "Sin descripción",
		KeyInfoUnavailable:  "Información no disponible",
		KeyDefaultTitleYT:   "Video de YouTube",
		KeyDefaultTitleFB:   "Video de Facebook",
		KeyDefaultTitleIG:   "Post de Instagram",
		KeyDefaultAuthorYT:  "Canal de YouTube",
		KeyDefaultAuthorFB:  "Usuario de Facebook",
		KeyDefaultAuthorIG:  "Usuario de Instagram",
		KeyInfoNotAvailable: "No se pudo obtener información del contenido, pero se intentará descargar.",

		KeyStepDir:         "2. Carpeta de destino:",
		KeyDirEnterHint:    "(Presiona Enter para usar la carpeta de Descargas)",
		KeyPromptDir:       "Ingresa la ruta donde guardar el video:",
		KeyUsingDefaultDir: "Usando carpeta por defecto: %s",
		KeyUsingLocalDir:   "Usando carpeta local: %s",
		KeyDirCreateError:  "Error al crear la carpeta: %v",

		KeyStepName:         "3. Nombre del archivo:",
		KeyPromptName:       "Ingresa el nuevo nombre (sin extensión):",
		KeyUsingDefaultName: "Usando nombre por defecto: %s",

		KeyNotesTitle:      "Notas para %s:",
		KeyNoteIGPublic:    "Solo posts públicos",
		KeyNoteIGLimits:    "Puede tener limitaciones de descarga",
		KeyNoteFBPublic:    "Solo videos públicos",
		KeyNoteYTAudio:     "Puedes descargar video completo o solo audio",
		KeyNoteYTFormats:   "Audio disponible en MP3 o WAV",
		KeyNoteYTFFmpeg:    "Se requiere ffmpeg para conversión de audio",
		KeyNoteYTPrivate:   "Videos privados no funcionan",
		KeyConfirmDownload: "¿Proceder con la descarga desde %s? (s/n):",

		KeyConnecting:         "Conectando con %s...",
		KeyModeMenuTitle:      "Tipo de descarga:",
		KeyModeVideo:          "Video completo (con audio)",
		KeyModeMP3:            "Solo audio en formato MP3",
		KeyModeWAV:            "Solo audio en formato WAV",
		KeyPromptMode:         "Selecciona el tipo de descarga (1-%d):",
		KeyVideoQualityTitle:  "Opciones de calidad de video:",
		KeyQuality1080:        "1080p (Full HD) - Mejor calidad",
		KeyQuality720:         "720p (HD) - Buena calidad",
		KeyQuality480:         "480p (SD) - Calidad media",
		KeyQuality360:         "360p - Calidad básica",
		KeyQualityBest:        "Mejor calidad disponible (automático)",
		KeyQualityWorst:       "Menor calidad (descarga más rápida)",
		KeyPromptQuality:      "Selecciona la calidad (1-%d):",
		KeyAudioQualityTitle:  "Opciones de calidad de audio:",
		KeyAudioBest:          "Mejor calidad de audio disponible",
		KeyAudio320:           "Hasta 320 kbps (excelente calidad)",
		KeyAudio192:           "Hasta 192 kbps (buena calidad)",
		KeyAudio128:           "Hasta 128 kbps (calidad estándar)",
		KeyPromptAudioQuality: "Selecciona la calidad de audio (1-%d):",
		KeyInvalidOption:      "Opción inválida. Selecciona entre 1 y %d",
		KeyInvalidNumber:      "Por favor ingresa un número válido.",

		KeyStartingDownload:   "Iniciando descarga desde %s...",
		KeyDownloadType:       "Tipo: %s",
		KeyDownloadQuality:    "Calidad: %s",
		KeyFFmpegAudioNote:    "Nota: Se requiere ffmpeg para conversión de audio",
		KeyPublicVideosOnly:   "Nota: Solo funciona con videos públicos",
		KeyPublicPostsOnly:    "Nota: Solo funciona con posts públicos",
		KeyProgressLabel:      "Descargando",
		KeyDoneVideoYT:        "¡Descarga de video de YouTube completada!",
		KeyDoneMP3YT:          "¡Descarga de audio MP3 de YouTube completada!",
		KeyDoneWAVYT:          "¡Descarga de audio WAV de YouTube completada!",
		KeyDonePlatform:       "¡Descarga de %s completada!",
		KeyDownloadError:      "Error durante la descarga de %s: %v",
		KeySavedIn:            "El archivo se guardó en: %s",
		KeyElapsed:            "Tiempo de descarga: %s",
		KeyDownloadFailed:     "La descarga falló.",
		KeyDownloadCancelled:  "Descarga cancelada.",
		KeyRevealError:        "No se pudo abrir el administrador de archivos: %v",
		KeyAnother:            "¿Descargar otro video? (s/n):",
		KeyOperationCancelled: "Operación cancelada por el usuario.",
		KeyUnexpectedError:    "Error inesperado: %v",
		KeyRetrying:           "Intentando nuevamente...",

		KeyHintFFmpegRequired: "Error de ffmpeg: Se requiere ffmpeg para conversión de audio.",
		KeyHintFFmpegInstall:  "Instala ffmpeg desde: https://ffmpeg.org/",
		KeyHintFFmpegVideo:    "O intenta descargar solo el video.",
		KeyHintYTPrivate:      "El video puede ser privado o no estar disponible.",
		KeyHintYTAge:          "El video puede tener restricciones de edad.",
		KeyHintYTAgeAccount:   "Intenta con otro video o verifica la configuración de tu cuenta.",
		KeyHintYTRegion:       "El video puede estar bloqueado en tu región.",
		KeyHintYTCopyright:    "El video puede tener restricciones de copyright.",
		KeyHintYTLive:         "No se pueden descargar transmisiones en vivo.",
		KeyHintYTPremium:      "El video puede requerir YouTube Premium.",
		KeyHintYTSignIn:       "El video puede requerir iniciar sesión.",
		KeyHintYTUnknown:      "Error desconocido. Verifica la URL y la conexión.",
		KeyHintYTSolutions:    "Soluciones:",
		KeyHintYTSolPublic:    "Verifica que el video sea público",
		KeyHintYTSolCopyURL:   "Copia la URL directamente desde YouTube",
		KeyHintYTSolOther:     "Intenta con otro video",
		KeyHintYTSolUpdate:    "Actualiza yt-dlp: pip install --upgrade yt-dlp",
		KeyHintFBPrivate:      "El video puede ser privado o requerir autenticación.",
		KeyHintFBRemoved:      "El video no está disponible o fue eliminado.",
		KeyHintFBDefault:      "Verifica que el video sea público y la URL sea correcta.",
		KeyHintIGPrivate:      "La cuenta o el post puede ser privado.",
		KeyHintIGRemoved:      "El post no está disponible o fue eliminado.",
		KeyHintIGRateLimited:  "Instagram está limitando las descargas. Espera un momento.",
		KeyHintIGDefault:      "Verifica que el post sea público y la URL sea correcta.",
	}

	// English texts
	l.texts[LangEnglish] = map[string]string{
		KeyBannerTitle: "UNIVERSAL VIDEO DOWNLOADER",
		KeyAllViaYtDlp: "Every platform goes through yt-dlp (most stable option)",
		KeyUpdateHint:  "To update: pip install --upgrade yt-dlp",
		KeyFarewell:    "Thanks for using the universal downloader!",
		KeyVersion:     "media-downloader version %s",

		KeyYtDlpInstalled:     "yt-dlp: Installed",
		KeyYtDlpVersion:       "Version: %s",
		KeyYtDlpMissing:       "yt-dlp: Not installed",
		KeyYtDlpInstallHint:   "Install it with \"pip install yt-dlp\" or run with --install",
		KeyYtDlpInstalling:    "Downloading yt-dlp...",
		KeyFFmpegInstalled:    "ffmpeg: Installed",
		KeyFFmpegMissing:      "ffmpeg: Not found",
		KeyFFmpegRequired:     "IMPORTANT: ffmpeg is required to download audio (MP3/WAV)",
		KeyFFmpegDownloadFrom: "Download it from: https://ffmpeg.org/",
		KeyFFmpegVideoOnly:    "Without ffmpeg only full videos can be downloaded",

		KeyStepURL:          "1. Video URL:",
		KeyPromptURL:        "Enter the URL (YouTube, Facebook or Instagram):",
		KeyURLEmpty:         "The URL cannot be empty.",
		KeyURLUnknown:       "Unrecognized URL. Only YouTube, Facebook or Instagram URLs are supported.",
		KeyPlatformDetected: "Detected platform: %s",

		KeyFetchingInfo:     "Fetching content information...",
		KeyInfoError:        "Error fetching %s information: %v",
		KeyInfoPlatform:     "Platform: %s",
		KeyInfoTitle:        "Title: %s",
		KeyInfoAuthor:       "Author: %s",
		KeyInfoDuration:     "Duration: %s",
		KeyInfoViews:        "Views: %s",
		KeyInfoLikes:        "Likes: %s",
		KeyInfoDescription:  "Description: %s",
		KeyNoDescription:    "No description",
		KeyInfoUnavailable:  "Information not available",
		KeyDefaultTitleYT:   "YouTube video",
		KeyDefaultTitleFB:   "Facebook video",
		KeyDefaultTitleIG:   "Instagram post",
		KeyDefaultAuthorYT:  "YouTube channel",
		KeyDefaultAuthorFB:  "Facebook user",
		KeyDefaultAuthorIG:  "Instagram user",
		KeyInfoNotAvailable: "Could not fetch content information, the download will still be attempted.",

		KeyStepDir:         "2. Destination folder:",
		KeyDirEnterHint:    "(Press Enter to use your Downloads folder)",
		KeyPromptDir:       "Enter the path where the video will be saved:",
		KeyUsingDefaultDir: "Using default folder: %s",
		KeyUsingLocalDir:   "Using local folder: %s",
		KeyDirCreateError:  "Error creating the folder: %v",

		KeyStepName:         "3. File name:",
		KeyPromptName:       "Enter the new name (without extension):",
		KeyUsingDefaultName: "Using default name: %s",

		KeyNotesTitle:      "Notes for %s:",
		KeyNoteIGPublic:    "Public posts only",
		KeyNoteIGLimits:    "Downloads may be rate limited",
		KeyNoteFBPublic:    "Public videos only",
		KeyNoteYTAudio:     "You can download the full video or just the audio",
		KeyNoteYTFormats:   "Audio available as MP3 or WAV",
		KeyNoteYTFFmpeg:    "ffmpeg is required for audio conversion",
		KeyNoteYTPrivate:   "Private videos do not work",
		KeyConfirmDownload: "Proceed with the download from %s? (y/n):",

		KeyConnecting:         "Connecting to %s...",
		KeyModeMenuTitle:      "Download type:",
		KeyModeVideo:          "Full video (with audio)",
		KeyModeMP3:            "Audio only, MP3 format",
		KeyModeWAV:            "Audio only, WAV format",
		KeyPromptMode:         "Select the download type (1-%d):",
		KeyVideoQualityTitle:  "Video quality options:",
		KeyQuality1080:        "1080p (Full HD) - Best quality",
		KeyQuality720:         "720p (HD) - Good quality",
		KeyQuality480:         "480p (SD) - Medium quality",
		KeyQuality360:         "360p - Basic quality",
		KeyQualityBest:        "Best available quality (automatic)",
		KeyQualityWorst:       "Lowest quality (fastest download)",
		KeyPromptQuality:      "Select the quality (1-%d):",
		KeyAudioQualityTitle:  "Audio quality options:",
		KeyAudioBest:          "Best available audio quality",
		KeyAudio320:           "Up to 320 kbps (excellent quality)",
		KeyAudio192:           "Up to 192 kbps (good quality)",
		KeyAudio128:           "Up to 128 kbps (standard quality)",
		KeyPromptAudioQuality: "Select the audio quality (1-%d):",
		KeyInvalidOption:      "Invalid option. Choose between 1 and %d",
		KeyInvalidNumber:      "Please enter a valid number.",

		KeyStartingDownload:   "Starting download from %s...",
		KeyDownloadType:       "Type: %s",
		KeyDownloadQuality:    "Quality: %s",
		KeyFFmpegAudioNote:    "Note: ffmpeg is required for audio conversion",
		KeyPublicVideosOnly:   "Note: Only works with public videos",
		KeyPublicPostsOnly:    "Note: Only works with public posts",
		KeyProgressLabel:      "Downloading",
		KeyDoneVideoYT:        "YouTube video download completed!",
		KeyDoneMP3YT:          "YouTube MP3 audio download completed!",
		KeyDoneWAVYT:          "YouTube WAV audio download completed!",
		KeyDonePlatform:       "%s download completed!",
		KeyDownloadError:      "Error during the %s download: %v",
		KeySavedIn:            "The file was saved in: %s",
		KeyElapsed:            "Download time: %s",
		KeyDownloadFailed:     "The download failed.",
		KeyDownloadCancelled:  "Download cancelled.",
		KeyRevealError:        "Could not open the file manager: %v",
		KeyAnother:            "Download another video? (y/n):",
		KeyOperationCancelled: "Operation cancelled by the user.",
		KeyUnexpectedError:    "Unexpected error: %v",
		KeyRetrying:           "Trying again...",

		KeyHintFFmpegRequired: "ffmpeg error: ffmpeg is required for audio conversion.",
		KeyHintFFmpegInstall:  "Install ffmpeg from: https://ffmpeg.org/",
		KeyHintFFmpegVideo:    "Or try downloading the video only.",
		KeyHintYTPrivate:      "The video may be private or unavailable.",
		KeyHintYTAge:          "The video may be age restricted.",
		KeyHintYTAgeAccount:   "Try another video or check your account settings.",
		KeyHintYTRegion:       "The video may be blocked in your region.",
		KeyHintYTCopyright:    "The video may have copyright restrictions.",
		KeyHintYTLive:         "Live streams cannot be downloaded.",
		KeyHintYTPremium:      "The video may require YouTube Premium.",
		KeyHintYTSignIn:       "The video may require signing in.",
		KeyHintYTUnknown:      "Unknown error. Check the URL and your connection.",
		KeyHintYTSolutions:    "Solutions:",
		KeyHintYTSolPublic:    "Check that the video is public",
		KeyHintYTSolCopyURL:   "Copy the URL straight from YouTube",
		KeyHintYTSolOther:     "Try another video",
		KeyHintYTSolUpdate:    "Update yt-dlp: pip install --upgrade yt-dlp",
		KeyHintFBPrivate:      "The video may be private or require authentication.",
		KeyHintFBRemoved:      "The video is not available or was removed.",
		KeyHintFBDefault:      "Check that the video is public and the URL is correct.",
		KeyHintIGPrivate:      "The account or the post may be private.",
		KeyHintIGRemoved:      "The post is not available or was removed.",
		KeyHintIGRateLimited:  "Instagram is rate limiting downloads. Wait a moment.",
		KeyHintIGDefault:      "Check that the post is public and the URL is correct.",
	}
}
